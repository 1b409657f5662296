package packet

// Client to server.

// RequestPlayerProfilesPacket asks for one account, or for everyone on the
// current level when Requested is 0.
//
// @gen:r,w,regserver
type RequestPlayerProfilesPacket struct {
	Requested int32 `field:"Int"`
}

func (p RequestPlayerProfilesPacket) ID() ID {
	return 12000
}

// @gen:r,w,regserver,cat=LevelJoin
type LevelJoinPacket struct {
	LevelID  int64 `field:"Long"`
	Unlisted bool  `field:"Boolean"`
}

func (p LevelJoinPacket) ID() ID {
	return 12001
}

// @gen:r,w,regserver
type LevelLeavePacket struct{}

func (p LevelLeavePacket) ID() ID {
	return 12002
}

// @gen:r,w,regserver,unreliable,cat=PlayerData
type PlayerDataPacket struct {
	Data           PlayerData               `field:"Struct"`
	Meta           Optional[PlayerMetadata] `field:"Optional" inner:"Struct"`
	CounterChanges []CustomItem             `field:"PrefixedArray" inner:"Struct"`
}

func (p PlayerDataPacket) ID() ID {
	return 12003
}

// @gen:r,w,regserver,encrypted
type VoicePacket struct {
	Data EncodedAudioFrame `field:"Struct"`
}

func (p VoicePacket) ID() ID {
	return 12004
}

// @gen:r,w,regserver,encrypted,cat=ChatMessage
type ChatMessagePacket struct {
	Message string `field:"String"`
}

func (p ChatMessagePacket) ID() ID {
	return 12005
}

// Server to client.

// @gen:r,w,regclient,cat=Profiles
type PlayerProfilesPacket struct {
	Players []PlayerAccountData `field:"PrefixedArray" inner:"Struct"`
}

func (p PlayerProfilesPacket) ID() ID {
	return 22000
}

// LevelDataPacket carries every other player on the level. CustomItems is
// only present when the level has counters set.
//
// @gen:r,w,regclient,unreliable,cat=PlayerData
type LevelDataPacket struct {
	Players     []AssociatedPlayerData `field:"PrefixedArray" inner:"Struct"`
	CustomItems Optional[[]CustomItem] `field:"Optional" write:"writeCustomItems" read:"readCustomItems"`
}

func (p LevelDataPacket) ID() ID {
	return 22001
}

// @gen:r,w,regclient
type LevelPlayerMetadataPacket struct {
	Players []AssociatedPlayerMetadata `field:"PrefixedArray" inner:"Struct"`
}

func (p LevelPlayerMetadataPacket) ID() ID {
	return 22002
}

// @gen:r,w,regclient,encrypted
type VoiceBroadcastPacket struct {
	PlayerID int32             `field:"Int"`
	Data     EncodedAudioFrame `field:"Struct"`
}

func (p VoiceBroadcastPacket) ID() ID {
	return 22003
}

// @gen:r,w,regclient,encrypted,cat=ChatMessage
type ChatMessageBroadcastPacket struct {
	PlayerID int32  `field:"Int"`
	Message  string `field:"String"`
}

func (p ChatMessageBroadcastPacket) ID() ID {
	return 22004
}
