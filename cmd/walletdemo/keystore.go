package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/wallet-demo/demo"
	"github.com/AlexZinkM/wallet-demo/internal/config"
	"github.com/AlexZinkM/wallet-demo/internal/crypto"
)

func newKeystoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keystore",
		Short: "Manage the wallet keystore the demo connects to",
	}
	cmd.AddCommand(newKeystoreInitCmd())
	return cmd
}

func newKeystoreInitCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new password-protected wallet keystore (.cwt)",
		Long: `Creates a new Solana keypair and stores it encrypted in a .cwt file marked
as a demo wallet. Point WALLET_FILE_PATH at the file so the demo detects it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				file = cfg.WalletFilePath
			}
			if file == "" {
				return errors.New("no keystore path: pass --file or set WALLET_FILE_PATH")
			}

			password, err := config.PromptForPassword("New wallet password: ")
			if err != nil {
				return err
			}
			defer clear(password)
			confirm, err := config.PromptForPassword("Repeat password: ")
			if err != nil {
				return err
			}
			defer clear(confirm)
			if !bytes.Equal(password, confirm) {
				return errors.New("passwords do not match")
			}

			address, err := demo.GenerateWallet(file, password, crypto.DefaultParams)
			if err != nil {
				if demo.IsFileExistsError(err) {
					return fmt.Errorf("%s already holds a keystore, refusing to overwrite", file)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wallet %s saved to %s\n", address, file)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "keystore path (default $WALLET_FILE_PATH)")
	return cmd
}
