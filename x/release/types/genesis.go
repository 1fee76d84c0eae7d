package types

import "fmt"

type GenesisState struct {
	Params   Params    `json:"params"`
	Releases []Release `json:"releases"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:   DefaultParams(),
		Releases: []Release{},
	}
}

func (gs GenesisState) Validate() error {
	mints := make(map[string]bool)
	for i, r := range gs.Releases {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("release[%d]: %w", i, err)
		}
		if mints[r.Mint.String()] {
			return fmt.Errorf("duplicated mint %s for release", r.Mint)
		}
		mints[r.Mint.String()] = true

		addr, err := r.ReleaseAddress()
		if err != nil {
			return fmt.Errorf("release[%d]: %w", i, err)
		}
		signer, err := FindReleaseSigner(addr)
		if err != nil {
			return fmt.Errorf("release[%d]: %w", i, err)
		}
		if !signer.Address.Equals(r.ReleaseSigner) {
			return fmt.Errorf("release[%d]: signer %s is not the canonical signer %s", i, r.ReleaseSigner, signer.Address)
		}
	}
	return gs.Params.Validate()
}
