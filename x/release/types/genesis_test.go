package types

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func TestGenesisState_Validate(t *testing.T) {
	a, b := testRelease(t), testRelease(t)

	wrongSigner := testRelease(t)
	wrongSigner.ReleaseSigner = solana.NewWallet().PublicKey()

	badParams := DefaultGenesis()
	badParams.Params.RewardPolicy = "lottery"

	tests := []struct {
		desc     string
		genState *GenesisState
		valid    bool
	}{
		{
			desc:     "default is valid",
			genState: DefaultGenesis(),
			valid:    true,
		},
		{
			desc:     "valid genesis state",
			genState: &GenesisState{Params: DefaultParams(), Releases: []Release{a, b}},
			valid:    true,
		},
		{
			desc:     "duplicated mint",
			genState: &GenesisState{Params: DefaultParams(), Releases: []Release{a, a}},
		},
		{
			desc:     "non canonical signer",
			genState: &GenesisState{Params: DefaultParams(), Releases: []Release{wrongSigner}},
		},
		{
			desc:     "invalid params",
			genState: badParams,
		},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
