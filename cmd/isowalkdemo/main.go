// Command isowalkdemo runs one end-to-end key exchange over the library's
// public facade and logs the shared secret both parties derive, letting a
// reader exercise --prime and --model without writing any Go.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/suhrikim/HuffSIDH/params"
	"github.com/suhrikim/HuffSIDH/sidh"
)

var (
	flagPrime string
	flagModel string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "isowalkdemo",
		Short: "Run a single SIDH-style key exchange and print the shared secret",
		RunE:  runDemo,
	}
	cmd.Flags().StringVar(&flagPrime, "prime", "p751", "prime family to use: p610 or p751")
	cmd.Flags().StringVar(&flagModel, "model", "montgomery", "curve model to walk: montgomery or huff")
	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	p, err := resolvePrime(flagPrime)
	if err != nil {
		return err
	}
	model, err := resolveModel(flagModel)
	if err != nil {
		return err
	}

	logger.Info().Str("prime", flagPrime).Str("model", flagModel).Msg("starting key exchange")

	alicePrv := sidh.NewPrivateKey(p, sidh.Alice, model)
	if err := alicePrv.Generate(rand.Reader); err != nil {
		return fmt.Errorf("generating alice's key: %w", err)
	}
	bobPrv := sidh.NewPrivateKey(p, sidh.Bob, model)
	if err := bobPrv.Generate(rand.Reader); err != nil {
		return fmt.Errorf("generating bob's key: %w", err)
	}

	var alicePub, bobPub *sidh.PublicKey
	var secretA, secretB []byte
	if model == sidh.Montgomery {
		alicePub = sidh.KeygenAliceMontgomery(alicePrv)
		bobPub = sidh.KeygenBobMontgomery(bobPrv)
		secretA, err = sidh.AgreeAliceMontgomery(alicePrv, bobPub)
		if err != nil {
			return err
		}
		secretB, err = sidh.AgreeBobMontgomery(bobPrv, alicePub)
		if err != nil {
			return err
		}
	} else {
		alicePub = sidh.KeygenAliceHuff(alicePrv)
		bobPub = sidh.KeygenBobHuff(bobPrv)
		secretA, err = sidh.AgreeAliceHuff(alicePrv, bobPub)
		if err != nil {
			return err
		}
		secretB, err = sidh.AgreeBobHuff(bobPrv, alicePub)
		if err != nil {
			return err
		}
	}

	logger.Info().
		Int("alice_public_key_bytes", alicePub.Size()).
		Int("bob_public_key_bytes", bobPub.Size()).
		Msg("exchanged public keys")

	agree := hex.EncodeToString(secretA) == hex.EncodeToString(secretB)
	logger.Info().Bool("agree", agree).Msg("derived shared secrets")

	fmt.Printf("alice secret: %s\n", hex.EncodeToString(secretA))
	fmt.Printf("bob secret:   %s\n", hex.EncodeToString(secretB))
	if !agree {
		return fmt.Errorf("shared secrets did not match")
	}
	return nil
}

func resolvePrime(name string) (*params.Params, error) {
	switch name {
	case "p610":
		return params.P610(), nil
	case "p751":
		return params.P751(), nil
	default:
		return nil, fmt.Errorf("unknown prime %q: want p610 or p751", name)
	}
}

func resolveModel(name string) (sidh.Model, error) {
	switch name {
	case "montgomery":
		return sidh.Montgomery, nil
	case "huff":
		return sidh.Huff, nil
	default:
		return 0, fmt.Errorf("unknown model %q: want montgomery or huff", name)
	}
}
