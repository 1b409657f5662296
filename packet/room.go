package packet

// Client to server.

// @gen:r,w,regserver,cat=RoomCreate
type CreateRoomPacket struct {
	Name     string       `field:"String"`
	Password string       `field:"String"`
	Settings RoomSettings `field:"Struct"`
}

func (p CreateRoomPacket) ID() ID {
	return 13000
}

// @gen:r,w,regserver,cat=RoomJoin
type JoinRoomPacket struct {
	RoomID   uint32 `field:"UnsignedInt"`
	Password string `field:"String"`
}

func (p JoinRoomPacket) ID() ID {
	return 13001
}

// @gen:r,w,regserver
type LeaveRoomPacket struct{}

func (p LeaveRoomPacket) ID() ID {
	return 13002
}

// @gen:r,w,regserver
type RequestRoomPlayerListPacket struct{}

func (p RequestRoomPlayerListPacket) ID() ID {
	return 13003
}

// @gen:r,w,regserver,cat=RoomInfo
type UpdateRoomSettingsPacket struct {
	Settings RoomSettings `field:"Struct"`
}

func (p UpdateRoomSettingsPacket) ID() ID {
	return 13004
}

// @gen:r,w,regserver
type RoomSendInvitePacket struct {
	Player int32 `field:"Int"`
}

func (p RoomSendInvitePacket) ID() ID {
	return 13005
}

// @gen:r,w,regserver
type RequestRoomListPacket struct{}

func (p RequestRoomListPacket) ID() ID {
	return 13006
}

// Server to client.

// @gen:r,w,regclient,cat=RoomCreate
type RoomCreatedPacket struct {
	Info RoomInfo `field:"Struct"`
}

func (p RoomCreatedPacket) ID() ID {
	return 23000
}

// @gen:r,w,regclient,cat=RoomJoin
type RoomJoinedPacket struct{}

func (p RoomJoinedPacket) ID() ID {
	return 23001
}

// @gen:r,w,regclient
type RoomJoinFailedPacket struct {
	Message string `field:"String"`
}

func (p RoomJoinFailedPacket) ID() ID {
	return 23002
}

// @gen:r,w,regclient,cat=RoomInfo
type RoomPlayerListPacket struct {
	Info    RoomInfo                       `field:"Struct"`
	Players []PlayerRoomPreviewAccountData `field:"PrefixedArray" inner:"Struct"`
}

func (p RoomPlayerListPacket) ID() ID {
	return 23003
}

// @gen:r,w,regclient,cat=RoomInfo
type RoomInfoPacket struct {
	Info RoomInfo `field:"Struct"`
}

func (p RoomInfoPacket) ID() ID {
	return 23004
}

// @gen:r,w,regclient
type RoomInvitePacket struct {
	PlayerData PlayerRoomPreviewAccountData `field:"Struct"`
	RoomID     uint32                       `field:"UnsignedInt"`
	RoomToken  uint32                       `field:"UnsignedInt"`
}

func (p RoomInvitePacket) ID() ID {
	return 23005
}

// @gen:r,w,regclient
type RoomListPacket struct {
	Rooms []RoomListingInfo `field:"PrefixedArray" inner:"Struct"`
}

func (p RoomListPacket) ID() ID {
	return 23006
}
