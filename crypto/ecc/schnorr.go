package ecc

import (
	"io"

	"github.com/MixinNetwork/superzk-go/crypto/blake"
	"github.com/pkg/errors"
)

const (
	SIGN_NONCE_DOMAIN_TAG       = "SZK$DSA$HASH1"
	SIGN_CHALLENGE_DOMAIN_TAG   = "SZK$DSA$HASH2"
	SIGN_N_NONCE_DOMAIN_TAG     = "SZK$DSAN$HASH1"
	SIGN_N_CHALLENGE_DOMAIN_TAG = "SZK$DSAN$HASH2"

	SignatureSize  = 64
	SignatureNSize = 96
)

func hashToFR(tag string, data ...[]byte) FR {
	h := blake.Blake2b([]byte(tag), data...)
	return FRFromBytes(h[:])
}

func usable(p Point) bool {
	return !p.IsZero() && p.IsValid()
}

func nonceSeed(r io.Reader) ([]byte, error) {
	seed := make([]byte, 32)
	if _, err := io.ReadFull(r, seed); err != nil {
		return nil, errors.Wrap(err, "ecc: signature nonce")
	}
	return seed, nil
}

// Sign produces R ‖ S with B·S = R + (B·sk)·H(R ‖ B·sk ‖ msg).
func Sign(r io.Reader, msg []byte, sk FR, base Multiplier) ([]byte, error) {
	seed, err := nonceSeed(r)
	if err != nil {
		return nil, err
	}
	skb := sk.Bytes()
	a := hashToFR(SIGN_NONCE_DOMAIN_TAG, seed, skb[:], msg)

	R := base.Mult(a)
	PK := base.Mult(sk)
	if !usable(R) || !usable(PK) {
		return nil, ErrDegenerateSignature
	}
	rb, pkb := R.Bytes(), PK.Bytes()
	m := hashToFR(SIGN_CHALLENGE_DOMAIN_TAG, rb[:], pkb[:], msg)
	S := a.Add(sk.Mul(m))

	sb := S.Bytes()
	sig := make([]byte, 0, SignatureSize)
	sig = append(sig, rb[:]...)
	return append(sig, sb[:]...), nil
}

func Verify(msg, sig []byte, pk Point, base Multiplier) bool {
	if len(sig) != SignatureSize || !usable(pk) {
		return false
	}
	R, err := PointFromBytes(sig[:32])
	if err != nil || !usable(R) {
		return false
	}
	S := FRFromBytes(sig[32:])
	if S.IsZero() {
		return false
	}
	SB := base.Mult(S)
	if !usable(SB) {
		return false
	}
	rb, pkb := R.Bytes(), pk.Bytes()
	m := hashToFR(SIGN_CHALLENGE_DOMAIN_TAG, rb[:], pkb[:], msg)
	return SB.Equal(R.Add(pk.Mult(m)))
}

// SignN proves knowledge of one sk against two bases with a shared nonce
// and challenge. The encoding is R0 ‖ R1 ‖ S, which is not interchangeable
// with the legacy S ‖ R0 ‖ R1 layout.
func SignN(r io.Reader, msg []byte, sk FR, base0, base1 Multiplier) ([]byte, error) {
	seed, err := nonceSeed(r)
	if err != nil {
		return nil, err
	}
	skb := sk.Bytes()
	a := hashToFR(SIGN_N_NONCE_DOMAIN_TAG, seed, skb[:], msg)

	R0, R1 := base0.Mult(a), base1.Mult(a)
	PK0, PK1 := base0.Mult(sk), base1.Mult(sk)
	for _, p := range []Point{R0, R1, PK0, PK1} {
		if !usable(p) {
			return nil, ErrDegenerateSignature
		}
	}
	r0b, r1b := R0.Bytes(), R1.Bytes()
	pk0b, pk1b := PK0.Bytes(), PK1.Bytes()
	m := hashToFR(SIGN_N_CHALLENGE_DOMAIN_TAG, r0b[:], r1b[:], pk0b[:], pk1b[:], msg)
	S := a.Add(sk.Mul(m))

	sb := S.Bytes()
	sig := make([]byte, 0, SignatureNSize)
	sig = append(sig, r0b[:]...)
	sig = append(sig, r1b[:]...)
	return append(sig, sb[:]...), nil
}

func VerifyN(msg, sig []byte, pk0, pk1 Point, base0, base1 Multiplier) bool {
	if len(sig) != SignatureNSize || !usable(pk0) || !usable(pk1) {
		return false
	}
	R0, err := PointFromBytes(sig[:32])
	if err != nil || !usable(R0) {
		return false
	}
	R1, err := PointFromBytes(sig[32:64])
	if err != nil || !usable(R1) {
		return false
	}
	S := FRFromBytes(sig[64:])
	if S.IsZero() {
		return false
	}
	SB0, SB1 := base0.Mult(S), base1.Mult(S)
	if !usable(SB0) || !usable(SB1) {
		return false
	}

	r0b, r1b := R0.Bytes(), R1.Bytes()
	pk0b, pk1b := pk0.Bytes(), pk1.Bytes()
	m := hashToFR(SIGN_N_CHALLENGE_DOMAIN_TAG, r0b[:], r1b[:], pk0b[:], pk1b[:], msg)
	return SB0.Equal(R0.Add(pk0.Mult(m))) && SB1.Equal(R1.Add(pk1.Mult(m)))
}
