package types

const (
	EventTypeInit           = "release_init"
	EventTypePurchase       = "release_purchase"
	EventTypeRewardDeposit  = "release_reward_deposit"
	EventTypeUpdate         = "release_update"
	EventTypeUpdateMetadata = "release_update_metadata"
	EventTypeClose          = "release_close"
	EventTypeAccountCreated = "release_receiver_account_created"

	AttributeKeyMint          = "mint"
	AttributeKeyRelease       = "release"
	AttributeKeySigner        = "release_signer"
	AttributeKeyAuthority     = "authority"
	AttributeKeyPayer         = "payer"
	AttributeKeyReceiver      = "receiver"
	AttributeKeyRoyalty       = "royalty_account"
	AttributeKeyPrice         = "price"
	AttributeKeyAmount        = "amount"
	AttributeKeyTotalSupply   = "total_supply"
	AttributeKeySupply        = "supply"
	AttributeKeyDeposit       = "deposit"
	AttributeKeyRewardAmount  = "reward_amount"
	AttributeKeyMerkleRootIdx = "merkle_tree_root_index"
	AttributeKeyURI           = "uri"
)
