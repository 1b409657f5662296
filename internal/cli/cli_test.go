package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifest = `
[log]
level = "error"

[[mods]]
id = "example.roomjoin"
category = "RoomJoin"

  [[mods.fields]]
  name = "level"
  type = "u16"
  value = 42
`

// run executes the command tree in a scratch directory and returns stdout.
func run(t *testing.T, config string, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)

	if config != "" {
		path := filepath.Join(dir, "globed.toml")
		require.NoError(t, os.WriteFile(path, []byte(config), 0o644))
		args = append([]string{"--config", path}, args...)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestCatalog(t *testing.T) {
	out, err := run(t, "", "", "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "JoinRoomPacket")
	assert.Contains(t, out, "RoomJoinedPacket")
	assert.Contains(t, out, "RoomJoin")

	out, err = run(t, "", "", "catalog", "--side", "client")
	require.NoError(t, err)
	assert.NotContains(t, out, "JoinRoomPacket")
	assert.Contains(t, out, "RoomJoinedPacket")
}

func TestEncode(t *testing.T) {
	out, err := run(t, "", "{RoomID: 9, Password: ab}", "encode", "JoinRoom", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, "000032c900000009000000026162\n", out)
}

func TestEncode_WithExtension(t *testing.T) {
	out, err := run(t, manifest, "{RoomID: 9}", "encode", "JoinRoomPacket", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, "000032c90000000900000000002a\n", out)
}

func TestEncode_Errors(t *testing.T) {
	_, err := run(t, "", "", "encode", "NoSuchPacket")
	assert.ErrorContains(t, err, "unknown packet")

	_, err = run(t, "", "{RoomNumber: 9}", "encode", "JoinRoom", "-f", "-")
	assert.Error(t, err)
}

func TestEncode_HexBytes(t *testing.T) {
	out, err := run(t, "", "{Key: 0a0b}", "encode", "CryptoHandshakeResponse", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, "00004e21000000020a0b\n", out)
}

func TestDecode(t *testing.T) {
	out, err := run(t, manifest, "", "decode", "000032c90000000900000000002a")
	require.NoError(t, err)
	assert.Equal(t, `id: 13001
name: JoinRoomPacket
direction: serverbound
group: room
fields:
  RoomID: 9
  Password: ""
extensions:
  example.roomjoin:
    level: 42
`, out)
}

func TestDecode_Stdin(t *testing.T) {
	out, err := run(t, "", "0x 0000 4e20\n 0000 0007 0000 0003\n", "decode", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "name: PingResponsePacket")
	assert.Contains(t, out, "PingID: 7")
	assert.Contains(t, out, "PlayerCount: 3")
}

func TestDecode_Errors(t *testing.T) {
	_, err := run(t, "", "", "decode", "zz")
	assert.ErrorContains(t, err, "invalid hex")

	// a RoomJoin packet with a missing extension value
	_, err = run(t, manifest, "", "decode", "000032c9000000090000000000")
	assert.Error(t, err)

	_, err = run(t, "", "", "decode", "--side", "client", "000032c9000000090000000000")
	assert.ErrorContains(t, err, "not found")
}

func TestHooks(t *testing.T) {
	out, err := run(t, manifest, "", "hooks")
	require.NoError(t, err)
	assert.Contains(t, out, "example.roomjoin")
	assert.Contains(t, out, "level:u16")
	assert.Contains(t, out, "2 registrations")
}

func TestInvalidSide(t *testing.T) {
	_, err := run(t, "", "", "catalog", "--side", "both")
	assert.ErrorContains(t, err, "invalid --side")
}

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
