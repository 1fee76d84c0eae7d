package types

const (
	EventTypeCreateMint   = "tokenext_create_mint"
	EventTypeInitMetadata = "tokenext_initialize_metadata"
	EventTypeUpdateField  = "tokenext_update_field"
	EventTypeMintTo       = "tokenext_mint_to"

	AttributeKeyMint      = "mint"
	AttributeKeyDenom     = "denom"
	AttributeKeyAuthority = "authority"
	AttributeKeyPayer     = "payer"
	AttributeKeyField     = "field"
	AttributeKeyValue     = "value"
	AttributeKeyRecipient = "recipient"
	AttributeKeyAmount    = "amount"
	AttributeKeySupply    = "supply"
)
