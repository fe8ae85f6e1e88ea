package superzk

import (
	"sync"

	"github.com/MixinNetwork/superzk-go/crypto/blake"
	"github.com/MixinNetwork/superzk-go/crypto/ecc"
	"github.com/MixinNetwork/superzk-go/internal/logging"
)

const (
	ACCOUNT_BASE_PERSONAL = "$SROKEYSGEN"
	CR_BASE_PERSONAL      = "SZK$ASSET$CR"
	ROOT_BASE_PERSONAL    = "SZK$ROOTCM"
	OUT_CM_BASE_PERSONAL  = "$SROOUTCMGEN"

	ZSK_DOMAIN_TAG        = "LIBZEROZSK"
	VSK_DOMAIN_TAG        = "LIBZEROVSK"
	PKR_HR_Z_DOMAIN_TAG   = "SZK$PKR$HR$Z"
	PKR_HR_V_DOMAIN_TAG   = "SZK$PKR$HR$V"
	PKR_KDF_DOMAIN_TAG    = "SZK$PKR$KDF"
	ROOT_INDEX_DOMAIN_TAG = "SZK$ROOT$INDEX"
	ASSET_TKN_DOMAIN_TAG  = "SZK$TKN"
	ASSET_TKT_DOMAIN_TAG  = "SZK$TKT"

	CZERO_CURRENCY_DOMAIN_TAG    = "$SROASSETCY"
	CZERO_TICKET_DOMAIN_TAG      = "$SROASSETTK"
	CZERO_TICKET_HASH_DOMAIN_TAG = "$SROASSETTK.H"
	CZERO_KDF_DOMAIN_TAG         = "CZERO.KEYS.KDF"
)

var logger = logging.MustGetLogger("superzk")

type lazyGroup struct {
	once        sync.Once
	group       *ecc.Group
	personal    string
	segments    int
	segmentBits int
	windowBits  int
}

func (l *lazyGroup) get() *ecc.Group {
	l.once.Do(func() {
		g, err := ecc.NewGroup([]byte(l.personal), l.segments, l.segmentBits, l.windowBits)
		if err != nil {
			logger.Panicf("fixed base %s: %v", l.personal, err)
		}
		l.group = g
	})
	return l.group
}

var (
	accountBase = &lazyGroup{personal: ACCOUNT_BASE_PERSONAL, segments: 1, segmentBits: 256, windowBits: 4}
	crBase      = &lazyGroup{personal: CR_BASE_PERSONAL, segments: 1, segmentBits: 256, windowBits: 4}
	rootBase    = &lazyGroup{personal: ROOT_BASE_PERSONAL, segments: 10, segmentBits: 128, windowBits: 4}
	outCmBase   = &lazyGroup{personal: OUT_CM_BASE_PERSONAL, segments: 8, segmentBits: 192, windowBits: 4}
)

// AccountBase is the generator G of every account key.
func AccountBase() *ecc.Group { return accountBase.get() }

// CrBase blinds asset commitments.
func CrBase() *ecc.Group { return crBase.get() }

// RootBase commits to (index, address, asset commitment) triples.
func RootBase() *ecc.Group { return rootBase.get() }

// OutCmBase commits to legacy confidential outputs.
func OutCmBase() *ecc.Group { return outCmBase.get() }

func hashToFR(tag string, data ...[]byte) ecc.FR {
	h := blake.Blake2b([]byte(tag), data...)
	return ecc.FRFromBytes(h[:])
}
