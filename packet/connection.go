package packet

import "github.com/google/uuid"

// Client to server.

// @gen:r,w,regserver,unreliable
type PingPacket struct {
	PingID uint32 `field:"UnsignedInt"`
}

func (p PingPacket) ID() ID {
	return 10000
}

// @gen:r,w,regserver
type CryptoHandshakeStartPacket struct {
	Protocol uint16 `field:"UnsignedShort"`
	Key      []byte `field:"ByteArray"`
}

func (p CryptoHandshakeStartPacket) ID() ID {
	return 10001
}

// @gen:r,w,regserver,unreliable
type KeepalivePacket struct{}

func (p KeepalivePacket) ID() ID {
	return 10002
}

// @gen:r,w,regserver,encrypted,cat=Login
type LoginPacket struct {
	AccountID          int32          `field:"Int"`
	UserID             int32          `field:"Int"`
	Name               string         `field:"String"`
	Token              string         `field:"String"`
	Icons              PlayerIconData `field:"Struct"`
	FragmentationLimit uint16         `field:"UnsignedShort"`
	Platform           string         `field:"String"`
}

func (p LoginPacket) ID() ID {
	return 10003
}

// @gen:r,w,regserver
type DisconnectPacket struct{}

func (p DisconnectPacket) ID() ID {
	return 10004
}

// ClaimThreadPacket binds the sender's unreliable channel to the session
// that received Secret in LoggedInPacket.
//
// @gen:r,w,regserver,unreliable
type ClaimThreadPacket struct {
	Secret uuid.UUID `field:"UUID"`
}

func (p ClaimThreadPacket) ID() ID {
	return 10005
}

// @gen:r,w,regserver
type KeepaliveTCPPacket struct{}

func (p KeepaliveTCPPacket) ID() ID {
	return 10006
}

// @gen:r,w,regserver,unreliable
type ConnectionTestPacket struct {
	UID  uint32 `field:"UnsignedInt"`
	Data []byte `field:"ByteArray"`
}

func (p ConnectionTestPacket) ID() ID {
	return 10007
}

// Server to client.

// @gen:r,w,regclient,unreliable
type PingResponsePacket struct {
	PingID      uint32 `field:"UnsignedInt"`
	PlayerCount uint32 `field:"UnsignedInt"`
}

func (p PingResponsePacket) ID() ID {
	return 20000
}

// @gen:r,w,regclient
type CryptoHandshakeResponsePacket struct {
	Key []byte `field:"ByteArray"`
}

func (p CryptoHandshakeResponsePacket) ID() ID {
	return 20001
}

// @gen:r,w,regclient,unreliable
type KeepaliveResponsePacket struct {
	PlayerCount uint32 `field:"UnsignedInt"`
}

func (p KeepaliveResponsePacket) ID() ID {
	return 20002
}

// @gen:r,w,regclient
type ServerDisconnectPacket struct {
	Message string `field:"String"`
}

func (p ServerDisconnectPacket) ID() ID {
	return 20003
}

// @gen:r,w,regclient,encrypted,cat=Login
type LoggedInPacket struct {
	TPS             uint32                    `field:"UnsignedInt"`
	Secret          uuid.UUID                 `field:"UUID"`
	SpecialUserData Optional[SpecialUserData] `field:"Optional" inner:"Struct"`
	AllRoles        []ServerRole              `field:"PrefixedArray" inner:"Struct"`
}

func (p LoggedInPacket) ID() ID {
	return 20004
}

// @gen:r,w,regclient
type LoginFailedPacket struct {
	Message string `field:"String"`
}

func (p LoginFailedPacket) ID() ID {
	return 20005
}

// @gen:r,w,regclient
type ServerNoticePacket struct {
	Message  string `field:"String"`
	CanReply bool   `field:"Boolean"`
}

func (p ServerNoticePacket) ID() ID {
	return 20006
}

// @gen:r,w,regclient
type ProtocolMismatchPacket struct {
	ServerProtocol   uint16 `field:"UnsignedShort"`
	MinClientVersion string `field:"String"`
}

func (p ProtocolMismatchPacket) ID() ID {
	return 20007
}

// @gen:r,w,regclient
type KeepaliveTCPResponsePacket struct{}

func (p KeepaliveTCPResponsePacket) ID() ID {
	return 20008
}

// @gen:r,w,regclient
type ClaimThreadFailedPacket struct{}

func (p ClaimThreadFailedPacket) ID() ID {
	return 20009
}

// @gen:r,w,regclient,unreliable
type ConnectionTestResponsePacket struct {
	UID  uint32 `field:"UnsignedInt"`
	Data []byte `field:"ByteArray"`
}

func (p ConnectionTestResponsePacket) ID() ID {
	return 20010
}

// @gen:r,w,regclient
type ServerBannedPacket struct {
	Message   string `field:"String"`
	Timestamp int64  `field:"Long"`
}

func (p ServerBannedPacket) ID() ID {
	return 20011
}

// @gen:r,w,regclient
type ServerMutedPacket struct {
	Reason    string `field:"String"`
	Timestamp int64  `field:"Long"`
}

func (p ServerMutedPacket) ID() ID {
	return 20012
}
