package types

import (
	"github.com/gagliardetto/solana-go"

	"editions/internal/borshcodec"
)

// Mint is the token identity. Live supply is not stored here; it is the
// bank supply of the mint's denom.
type Mint struct {
	Decimals          uint8            `json:"decimals"`
	MintAuthority     solana.PublicKey `json:"mint_authority"`
	MetadataAuthority solana.PublicKey `json:"metadata_authority"`
}

var MintValueCodec = borshcodec.New[Mint]("Mint")

// Metadata is the on-token metadata record.
type Metadata struct {
	UpdateAuthority solana.PublicKey `json:"update_authority"`
	Mint            solana.PublicKey `json:"mint"`
	Name            string           `json:"name"`
	Symbol          string           `json:"symbol"`
	URI             string           `json:"uri"`
}

var MetadataValueCodec = borshcodec.New[Metadata]("TokenMetadata")

const (
	FieldName   = "name"
	FieldSymbol = "symbol"
	FieldURI    = "uri"
)

// SetField rewrites one metadata field. It reports false for unknown fields.
func (m *Metadata) SetField(field, value string) bool {
	switch field {
	case FieldName:
		m.Name = value
	case FieldSymbol:
		m.Symbol = value
	case FieldURI:
		m.URI = value
	default:
		return false
	}
	return true
}
