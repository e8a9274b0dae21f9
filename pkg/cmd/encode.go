// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/consensys/go-goedel/pkg/goedel"
	"github.com/consensys/go-goedel/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [flags] n...",
	Short: "Compute the Gödel number of one or more integers.",
	Long: `Compute the Gödel number of one or more non-negative integers.
	The k-th decimal digit of each integer becomes the exponent of the k-th
	prime.  Results are printed one per line, in the order given.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		cfg := DefaultEncodeConfig()
		// Read configuration file (if applicable)
		if filename := getString(cmd, "config"); filename != "" {
			var err error
			//
			if cfg, err = LoadEncodeConfig(filename); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		}
		// Flags take precedence
		if cmd.Flags().Changed("offset") {
			cfg.Offset = getInt(cmd, "offset")
		}
		//
		if cmd.Flags().Changed("reverse") {
			cfg.Reverse = getFlag(cmd, "reverse")
		}
		//
		if cmd.Flags().Changed("field") {
			cfg.Field = getFlag(cmd, "field")
		}
		//
		if cmd.Flags().Changed("jobs") {
			cfg.Jobs = getInt(cmd, "jobs")
		}
		// Go!
		if err := runEncode(NewOutput(os.Stdout), goedel.Default(), args, cfg); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

// Encode all arguments and write out their results.  Nothing is written if
// any argument is invalid.
func runEncode(out *Output, enc *goedel.Encoder, args []string, cfg EncodeConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	//
	stats := util.NewPerfStats()
	results, err := encodeAll(context.Background(), enc, args, cfg)
	//
	if err != nil {
		return err
	}
	//
	stats.Log(fmt.Sprintf("encoding %d integer(s)", len(args)))
	//
	for _, r := range results {
		if err := out.WriteLine(formatResult(r, cfg.Field)); err != nil {
			return err
		}
	}
	//
	return nil
}

// Encode a set of (decimal) arguments concurrently, returning results in the
// same order.  The first failure cancels any encodings not yet started.
func encodeAll(ctx context.Context, enc *goedel.Encoder, args []string, cfg EncodeConfig) ([]*big.Int, error) {
	var (
		results  = make([]*big.Int, len(args))
		group, c = errgroup.WithContext(ctx)
	)
	//
	group.SetLimit(cfg.Jobs)
	//
	for i, arg := range args {
		group.Go(func() error {
			if err := c.Err(); err != nil {
				return err
			}
			//
			start := time.Now()
			//
			r, err := enc.EncodeValue(arg, cfg.Offset, cfg.Reverse)
			if err != nil {
				return err
			}
			//
			log.Debugf("encoded %s (%d bits) in %s", arg, r.BitLen(), time.Since(start))
			//
			results[i] = r
			//
			return nil
		})
	}
	//
	return results, group.Wait()
}

// Format a result for printing, optionally reducing it into the field.
func formatResult(r *big.Int, field bool) string {
	if field {
		f := goedel.Fingerprint(r)
		return f.BigInt(new(big.Int)).String()
	}
	//
	return r.String()
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().IntP("offset", "o", 0, "add offset to every digit before exponentiation")
	encodeCmd.Flags().BoolP("reverse", "r", false, "pair primes with digits least significant first")
	encodeCmd.Flags().BoolP("field", "f", false, "print BLS12-377 fingerprint of each result")
	encodeCmd.Flags().IntP("jobs", "j", 0, "maximum number of integers encoded concurrently (default: number of CPUs)")
	encodeCmd.Flags().StringP("config", "c", "", "read defaults from a YAML configuration file")
}
