package types

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

type MintRecord struct {
	Address solana.PublicKey `json:"address"`
	Mint    Mint             `json:"mint"`
}

type GenesisState struct {
	Mints    []MintRecord `json:"mints"`
	Metadata []Metadata   `json:"metadata"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{Mints: []MintRecord{}, Metadata: []Metadata{}}
}

func (gs GenesisState) Validate() error {
	mints := make(map[solana.PublicKey]bool, len(gs.Mints))
	for _, m := range gs.Mints {
		if m.Address.IsZero() {
			return fmt.Errorf("mint address required")
		}
		if mints[m.Address] {
			return fmt.Errorf("duplicated mint %s", m.Address)
		}
		mints[m.Address] = true
	}
	seen := make(map[solana.PublicKey]bool, len(gs.Metadata))
	for _, md := range gs.Metadata {
		if !mints[md.Mint] {
			return fmt.Errorf("metadata for unknown mint %s", md.Mint)
		}
		if seen[md.Mint] {
			return fmt.Errorf("duplicated metadata for mint %s", md.Mint)
		}
		seen[md.Mint] = true
	}
	return nil
}
