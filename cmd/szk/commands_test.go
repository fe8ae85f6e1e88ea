package main

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/MixinNetwork/superzk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSeed = "4325491eae1136dd99fbbcc4c2748fff7ed1ff4f4b3e93ef173e34b33fd30e4a"
	testSK   = "ed676f034883c55cd7d79c68fc967d1c1cd6f26b6b24224ca3f049fff7c26704cfaa945ccc4daf598b2f28aa60e11cdea37928c6d1ed3fcdf687aa3bb60b2a43"
	testR    = "81cc09a7d57b43ece33f351303eb4f08e799c77d976c2b7c691340cfa3e5a124"
	testPKr  = "bb8361c41579cd2a6c2570dd68966dde25a1696e9a9f2d208324a77514631a1030edbef4f929c0873cc70c38fd53b273c4e2279a652da2843bbf97c36f60b88ab020ea6b184ff73ef4b1da1095bbf0b324befa5f81e5479f84d1ba783276d0cb"
)

func run(t *testing.T, args ...string) (string, error) {
	var out, log bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&log)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func mustRun(t *testing.T, args ...string) string {
	out, err := run(t, args...)
	require.NoError(t, err)
	return out
}

func TestKeyCommands(t *testing.T) {
	assert := assert.New(t)

	sk := mustRun(t, "seed2sk", testSeed)
	assert.Equal(testSK, sk)

	tk := mustRun(t, "sk2tk", sk)
	pk := mustRun(t, "tk2pk", tk)
	pkr := mustRun(t, "pkr", "--r", testR, pk)
	assert.Equal(testPKr, pkr)
	assert.Equal("true", mustRun(t, "ismine", tk, pkr))

	other := mustRun(t, "seed2sk", testR)
	otherTK := mustRun(t, "sk2tk", other)
	assert.Equal("false", mustRun(t, "ismine", otherTK, pkr))

	legacy := mustRun(t, "--scheme", "czero", "seed2sk", testSeed)
	assert.NotEqual(sk, legacy)
	decoded, err := hex.DecodeString(legacy)
	require.NoError(t, err)
	assert.False(superzk.IsFlagSet(decoded))

	_, err = run(t, "--scheme", "ristretto", "seed2sk", testSeed)
	assert.NotNil(err)
	_, err = run(t, "seed2sk", "abcd")
	assert.ErrorIs(err, superzk.ErrInvalidKey)
	_, err = run(t, "sk2tk", "zz")
	assert.NotNil(err)
}

func TestSignCommands(t *testing.T) {
	assert := assert.New(t)

	h := strings.Repeat("ab", 32)
	for _, scheme := range []string{"czero", "superzk"} {
		sk := mustRun(t, "--scheme", scheme, "seed2sk", testSeed)
		pk := mustRun(t, "tk2pk", mustRun(t, "sk2tk", sk))
		pkr := mustRun(t, "pkr", pk)

		sig := mustRun(t, "sign", sk, pkr, h)
		assert.Equal("true", mustRun(t, "verify", pkr, h, sig))
		assert.Equal("false", mustRun(t, "verify", pkr, strings.Repeat("cd", 32), sig))

		_, err := run(t, "sign", sk, pkr, "abcd")
		assert.NotNil(err)
	}

	other := mustRun(t, "seed2sk", testR)
	_, err := run(t, "sign", other, testPKr, h)
	assert.ErrorIs(err, superzk.ErrNotMine)
}

func TestAssetCommand(t *testing.T) {
	assert := assert.New(t)

	cc := mustRun(t, "assetcc", "--currency", "SERO", "--value", "1000")
	cm := mustRun(t, "assetcc", "--currency", "SERO", "--value", "1000", "--ar", testR)
	assert.Len(cc, 64)
	assert.Len(cm, 64)
	assert.NotEqual(cc, cm)
	assert.Equal(cc, mustRun(t, "assetcc", "--value", "1000"))

	legacy := mustRun(t, "--scheme", "czero", "assetcc", "--value", "1000")
	assert.NotEqual(cc, legacy)

	_, err := run(t, "assetcc", "--value", "-1")
	assert.NotNil(err)
	_, err = run(t, "assetcc", "--value", "ten")
	assert.NotNil(err)
}
