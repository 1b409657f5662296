package packet

// Client to server. Every admin request travels encrypted.

// @gen:r,w,regserver,encrypted
type AdminAuthPacket struct {
	Key string `field:"String"`
}

func (p AdminAuthPacket) ID() ID {
	return 19000
}

// AdminSendNoticePacket targets one player when Player is set, otherwise
// everyone matching RoomID and LevelID.
//
// @gen:r,w,regserver,encrypted
type AdminSendNoticePacket struct {
	RoomID   uint32 `field:"UnsignedInt"`
	LevelID  int64  `field:"Long"`
	Player   string `field:"String"`
	Message  string `field:"String"`
	CanReply bool   `field:"Boolean"`
}

func (p AdminSendNoticePacket) ID() ID {
	return 19001
}

// @gen:r,w,regserver,encrypted
type AdminDisconnectPacket struct {
	Player  string `field:"String"`
	Message string `field:"String"`
}

func (p AdminDisconnectPacket) ID() ID {
	return 19002
}

// @gen:r,w,regserver,encrypted
type AdminGetUserStatePacket struct {
	Player string `field:"String"`
}

func (p AdminGetUserStatePacket) ID() ID {
	return 19003
}

// Server to client.

// @gen:r,w,regclient,encrypted
type AdminAuthSuccessPacket struct {
	Role ComputedRole `field:"Struct"`
}

func (p AdminAuthSuccessPacket) ID() ID {
	return 29000
}

// @gen:r,w,regclient
type AdminErrorPacket struct {
	Message string `field:"String"`
}

func (p AdminErrorPacket) ID() ID {
	return 29001
}

// @gen:r,w,regclient,encrypted
type AdminUserDataPacket struct {
	UserEntry   UserEntry                              `field:"Struct"`
	AccountData Optional[PlayerRoomPreviewAccountData] `field:"Optional" inner:"Struct"`
}

func (p AdminUserDataPacket) ID() ID {
	return 29002
}

// @gen:r,w,regclient
type AdminSuccessMessagePacket struct {
	Message string `field:"String"`
}

func (p AdminSuccessMessagePacket) ID() ID {
	return 29003
}

// @gen:r,w,regclient
type AdminAuthFailedPacket struct{}

func (p AdminAuthFailedPacket) ID() ID {
	return 29004
}
