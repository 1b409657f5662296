package packet

// Client to server.

// @gen:r,w,regserver,cat=Profiles
type SyncIconsPacket struct {
	Icons PlayerIconData `field:"Struct"`
}

func (p SyncIconsPacket) ID() ID {
	return 11000
}

// @gen:r,w,regserver
type RequestGlobalPlayerListPacket struct{}

func (p RequestGlobalPlayerListPacket) ID() ID {
	return 11001
}

// @gen:r,w,regserver
type RequestLevelListPacket struct{}

func (p RequestLevelListPacket) ID() ID {
	return 11002
}

// @gen:r,w,regserver
type RequestPlayerCountPacket struct {
	LevelIDs []int64 `field:"PrefixedArray" inner:"Long"`
}

func (p RequestPlayerCountPacket) ID() ID {
	return 11003
}

// Server to client.

// @gen:r,w,regclient
type GlobalPlayerListPacket struct {
	Data []PlayerPreviewAccountData `field:"PrefixedArray" inner:"Struct"`
}

func (p GlobalPlayerListPacket) ID() ID {
	return 21000
}

// @gen:r,w,regclient
type LevelListPacket struct {
	Levels []GlobedLevel `field:"PrefixedArray" inner:"Struct"`
}

func (p LevelListPacket) ID() ID {
	return 21001
}

// @gen:r,w,regclient
type LevelPlayerCountPacket struct {
	Levels []GlobedLevel `field:"PrefixedArray" inner:"Struct"`
}

func (p LevelPlayerCountPacket) ID() ID {
	return 21002
}

// @gen:r,w,regclient
type RolesUpdatedPacket struct {
	SpecialUserData SpecialUserData `field:"Struct"`
}

func (p RolesUpdatedPacket) ID() ID {
	return 21003
}
