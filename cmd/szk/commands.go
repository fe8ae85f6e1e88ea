package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/MixinNetwork/superzk-go"
	"github.com/MixinNetwork/superzk-go/crypto/ecc"
	"github.com/MixinNetwork/superzk-go/internal/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var logger = logging.MustGetLogger("szk")

func decodeHex(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "%s is not hex", name)
	}
	return b, nil
}

func decodeHash(s string) ([]byte, error) {
	h, err := decodeHex("hash", s)
	if err != nil {
		return nil, err
	}
	if len(h) != 32 {
		return nil, errors.Errorf("hash must be 32 bytes, got %d", len(h))
	}
	return h, nil
}

func (c *cli) seed2skCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed2sk <seed hex>",
		Short: "Derive a spending key from a 32 byte seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := c.scheme()
			if err != nil {
				return err
			}
			seed, err := decodeHex("seed", args[0])
			if err != nil {
				return err
			}
			sk, err := superzk.Seed2SK(scheme, seed)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sk.String())
			return nil
		},
	}
}

func (c *cli) sk2tkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sk2tk <sk hex>",
		Short: "Derive the tracking key of a spending key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := decodeHex("sk", args[0])
			if err != nil {
				return err
			}
			sk, err := superzk.DecodeSK(data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sk.ToTK().String())
			return nil
		},
	}
}

func (c *cli) tk2pkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tk2pk <tk base58>",
		Short: "Derive the public address of a tracking key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := superzk.ParseTK(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tk.ToPK().String())
			return nil
		},
	}
}

func (c *cli) pkrCmd() *cobra.Command {
	var rHex string
	cmd := &cobra.Command{
		Use:   "pkr <pk base58>",
		Short: "Create a one time address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := superzk.ParsePK(args[0])
			if err != nil {
				return err
			}
			var r ecc.FR
			if rHex == "" {
				r, err = ecc.RandomFR(rand.Reader)
			} else {
				var b []byte
				b, err = decodeHex("r", rHex)
				r = ecc.FRFromBytes(b)
			}
			if err != nil {
				return err
			}
			pkr := pk.CreatePKr(r)
			logger.Debugw("pkr created", "scheme", pkr.Scheme.Name())
			fmt.Fprintln(cmd.OutOrStdout(), pkr.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&rHex, "r", "", "little endian randomness, random when empty")
	return cmd
}

func (c *cli) ismineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ismine <tk base58> <pkr hex>",
		Short: "Check whether a one time address belongs to a tracking key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := superzk.ParseTK(args[0])
			if err != nil {
				return err
			}
			pkr, err := superzk.DecodePKrHex(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tk.WithScheme(pkr.Scheme).IsMyPKr(pkr))
			return nil
		},
	}
}

func (c *cli) assetccCmd() *cobra.Command {
	var currency, category, ticket, value, ar string
	cmd := &cobra.Command{
		Use:   "assetcc",
		Short: "Compute the commitment of an asset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, ok := new(big.Int).SetString(value, 10)
			if !ok || n.Sign() < 0 {
				return errors.Errorf("invalid value %q", value)
			}
			asset := superzk.NewToken(currency, ecc.NewFR(n))
			copy(asset.Category[:], category)
			if ticket != "" {
				t, err := decodeHex("ticket", ticket)
				if err != nil {
					return err
				}
				copy(asset.Ticket[:], t)
			}
			if !asset.IsValid() {
				return superzk.ErrInvalidAsset
			}

			scheme, err := c.scheme()
			if err != nil {
				return err
			}
			var p ecc.Point
			switch {
			case scheme == superzk.Czero:
				p, err = asset.CzeroCC()
			case ar != "":
				var b []byte
				b, err = decodeHex("ar", ar)
				if err != nil {
					return err
				}
				p, err = asset.CM(ecc.FRFromBytes(b))
			default:
				p, err = asset.CC()
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.String())
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&currency, "currency", "SERO", "currency name")
	flags.StringVar(&value, "value", "0", "decimal value")
	flags.StringVar(&category, "category", "", "ticket category")
	flags.StringVar(&ticket, "ticket", "", "ticket hex")
	flags.StringVar(&ar, "ar", "", "blinding factor hex, commits when set")
	return cmd
}

func (c *cli) signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <sk hex> <pkr hex> <hash hex>",
		Short: "Sign a hash with the key behind a one time address",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := decodeHex("sk", args[0])
			if err != nil {
				return err
			}
			sk, err := superzk.DecodeSK(data)
			if err != nil {
				return err
			}
			pkr, err := superzk.DecodePKrHex(args[1])
			if err != nil {
				return err
			}
			h, err := decodeHash(args[2])
			if err != nil {
				return err
			}
			if !sk.ToTK().WithScheme(pkr.Scheme).IsMyPKr(pkr) {
				return superzk.ErrNotMine
			}

			var sig []byte
			if pkr.Scheme == superzk.SuperZK {
				sig, err = superzk.SignPKr(rand.Reader, h, sk, pkr)
			} else {
				sig, err = superzk.CzeroSignByPKr(rand.Reader, h, sk, pkr)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(sig))
			return nil
		},
	}
}

func (c *cli) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <pkr hex> <hash hex> <sig hex>",
		Short: "Verify an address signature",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkr, err := superzk.DecodePKrHex(args[0])
			if err != nil {
				return err
			}
			h, err := decodeHash(args[1])
			if err != nil {
				return err
			}
			sig, err := decodeHex("sig", args[2])
			if err != nil {
				return err
			}
			var ok bool
			if pkr.Scheme == superzk.SuperZK {
				ok = superzk.VerifyPKr(h, sig, pkr)
			} else {
				ok = superzk.CzeroVerifyByPKr(h, sig, pkr)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}
