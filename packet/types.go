package packet

import "io"

// Aggregates shared by several packets. They are encoded field by field in
// declared order, exactly like a packet body.

// @gen:r,w
type PlayerIconData struct {
	Cube        int16 `field:"Short"`
	Ship        int16 `field:"Short"`
	Ball        int16 `field:"Short"`
	Ufo         int16 `field:"Short"`
	Wave        int16 `field:"Short"`
	Robot       int16 `field:"Short"`
	Spider      int16 `field:"Short"`
	Swing       int16 `field:"Short"`
	Jetpack     int16 `field:"Short"`
	DeathEffect byte  `field:"Byte"`
	Color1      int16 `field:"Short"`
	Color2      int16 `field:"Short"`
	GlowColor   int16 `field:"Short"`
	Streak      byte  `field:"Byte"`
	ShipTrail   byte  `field:"Byte"`
}

// @gen:r,w
type SpecialUserData struct {
	Roles     []string         `field:"PrefixedArray" inner:"String"`
	NameColor Optional[string] `field:"Optional" inner:"String"`
}

// @gen:r,w
type ServerRole struct {
	ID        string `field:"String"`
	Priority  int32  `field:"Int"`
	BadgeIcon string `field:"String"`
	NameColor string `field:"String"`
}

// ComputedRole is the merged permission set of every role a user holds.
//
// @gen:r,w
type ComputedRole struct {
	Priority       int32            `field:"Int"`
	BadgeIcons     []string         `field:"PrefixedArray" inner:"String"`
	NameColor      Optional[string] `field:"Optional" inner:"String"`
	CanModerate    bool             `field:"Boolean"`
	CanMuteUsers   bool             `field:"Boolean"`
	CanBanUsers    bool             `field:"Boolean"`
	CanSetPassword bool             `field:"Boolean"`
	CanEditRoles   bool             `field:"Boolean"`
	CanSendNotices bool             `field:"Boolean"`
}

// @gen:r,w
type UserEntry struct {
	AccountID       int32            `field:"Int"`
	UserName        Optional[string] `field:"Optional" inner:"String"`
	NameColor       Optional[string] `field:"Optional" inner:"String"`
	UserRoles       []string         `field:"PrefixedArray" inner:"String"`
	IsBanned        bool             `field:"Boolean"`
	IsMuted         bool             `field:"Boolean"`
	IsWhitelisted   bool             `field:"Boolean"`
	AdminPassword   Optional[string] `field:"Optional" inner:"String"`
	ViolationReason Optional[string] `field:"Optional" inner:"String"`
	ViolationExpiry Optional[int64]  `field:"Optional" inner:"Long"`
}

// @gen:r,w
type PlayerAccountData struct {
	AccountID       int32                     `field:"Int"`
	UserID          int32                     `field:"Int"`
	Name            string                    `field:"String"`
	Icons           PlayerIconData            `field:"Struct"`
	SpecialUserData Optional[SpecialUserData] `field:"Optional" inner:"Struct"`
}

// @gen:r,w
type PlayerPreviewAccountData struct {
	AccountID int32  `field:"Int"`
	UserID    int32  `field:"Int"`
	Name      string `field:"String"`
	Cube      int16  `field:"Short"`
	Color1    int16  `field:"Short"`
	Color2    int16  `field:"Short"`
	GlowColor int16  `field:"Short"`
	LevelID   int64  `field:"Long"`
}

// @gen:r,w
type PlayerRoomPreviewAccountData struct {
	AccountID       int32                     `field:"Int"`
	UserID          int32                     `field:"Int"`
	Name            string                    `field:"String"`
	Cube            int16                     `field:"Short"`
	Color1          int16                     `field:"Short"`
	Color2          int16                     `field:"Short"`
	GlowColor       int16                     `field:"Short"`
	LevelID         int64                     `field:"Long"`
	SpecialUserData Optional[SpecialUserData] `field:"Optional" inner:"Struct"`
}

// @gen:r,w
type RoomSettings struct {
	InvitesOnly      bool   `field:"Boolean"`
	PublicInvites    bool   `field:"Boolean"`
	CollisionEnabled bool   `field:"Boolean"`
	TwoPlayerMode    bool   `field:"Boolean"`
	PlayerLimit      uint16 `field:"UnsignedShort"`
	FasterReset      bool   `field:"Boolean"`
}

// @gen:r,w
type RoomInfo struct {
	ID       uint32       `field:"UnsignedInt"`
	Owner    int32        `field:"Int"`
	Name     string       `field:"String"`
	Password string       `field:"String"`
	Settings RoomSettings `field:"Struct"`
}

// @gen:r,w
type RoomListingInfo struct {
	ID          uint32                   `field:"UnsignedInt"`
	PlayerCount uint16                   `field:"UnsignedShort"`
	Owner       PlayerPreviewAccountData `field:"Struct"`
	Name        string                   `field:"String"`
	HasPassword bool                     `field:"Boolean"`
	Settings    RoomSettings             `field:"Struct"`
}

// @gen:r,w
type Vec2 struct {
	X float32 `field:"Float"`
	Y float32 `field:"Float"`
}

// @gen:r,w
type SpecificIconData struct {
	Position      Vec2    `field:"Struct"`
	Rotation      float32 `field:"Float"`
	IconType      byte    `field:"Byte"`
	IsVisible     bool    `field:"Boolean"`
	IsLookingLeft bool    `field:"Boolean"`
	IsUpsideDown  bool    `field:"Boolean"`
	IsDashing     bool    `field:"Boolean"`
}

// @gen:r,w
type PlayerData struct {
	Timestamp          float32          `field:"Float"`
	Player1            SpecificIconData `field:"Struct"`
	Player2            SpecificIconData `field:"Struct"`
	LastDeathTimestamp float32          `field:"Float"`
	CurrentPercentage  float64          `field:"Double"`
	IsDead             bool             `field:"Boolean"`
	IsPaused           bool             `field:"Boolean"`
	IsPracticing       bool             `field:"Boolean"`
	IsInEditor         bool             `field:"Boolean"`
}

// @gen:r,w
type AssociatedPlayerData struct {
	AccountID int32      `field:"Int"`
	Data      PlayerData `field:"Struct"`
}

// @gen:r,w
type PlayerMetadata struct {
	LocalBest uint32 `field:"UnsignedInt"`
	Attempts  int32  `field:"Int"`
}

// @gen:r,w
type AssociatedPlayerMetadata struct {
	AccountID int32          `field:"Int"`
	Data      PlayerMetadata `field:"Struct"`
}

// CustomItem is one changed custom item counter on a level.
//
// @gen:r,w
type CustomItem struct {
	ItemID int32 `field:"Int"`
	Value  int32 `field:"Int"`
}

func writeCustomItems(w io.Writer, v []CustomItem) error {
	return WritePrefixedArray(w, v, WriteStruct[CustomItem])
}

func readCustomItems(r *Reader) ([]CustomItem, error) {
	return ReadPrefixedArray(r, ReadStruct[CustomItem])
}

// @gen:r,w
type GlobedLevel struct {
	LevelID     int64  `field:"Long"`
	PlayerCount uint16 `field:"UnsignedShort"`
}

// EncodedAudioFrame holds consecutive opus frames.
//
// @gen:r,w
type EncodedAudioFrame struct {
	Opus [][]byte `field:"PrefixedArray" inner:"ByteArray"`
}
