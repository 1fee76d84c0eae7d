package types

// CompressedProof is a validity proof over the reward pool's state tree. The
// module never inspects it.
type CompressedProof struct {
	A [32]byte `json:"a"`
	B [64]byte `json:"b"`
	C [32]byte `json:"c"`
}

// MerkleContext locates the buyer's payment account in the reward pool's
// state tree.
type MerkleContext struct {
	MerkleTreeIndex uint8   `json:"merkle_tree_index"`
	NullifierQueue  uint8   `json:"nullifier_queue_index"`
	LeafIndex       uint32  `json:"leaf_index"`
	QueueIndex      *uint16 `json:"queue_index,omitempty"`
}

type PoolConfig struct {
	Address   [32]byte `json:"address"`
	Authority [32]byte `json:"authority"`
	Pool      [32]byte `json:"pool"`

	FirstMinterPercent      uint64 `json:"first_minter_percent"`
	InviteReferralPercent   uint64 `json:"invite_referral_percent"`
	PurchaseReferralPercent uint64 `json:"purchase_referral_percent"`
	TopSupportersPercent    uint64 `json:"top_supporters_percent"`
	TreasuryPercent         uint64 `json:"treasury_percent"`
	FeeBasisPoints          uint64 `json:"fee_basis_points"`
	FeeBase                 uint64 `json:"fee_base"`
}

type PoolAccount struct {
	Owner      [32]byte `json:"owner"`
	Config     [32]byte `json:"config"`
	AmountOwed uint64   `json:"amount_owed"`
}

// RewardDeposit carries everything the reward pool needs to credit a
// purchase. It is passed through unchanged.
type RewardDeposit struct {
	Proof               CompressedProof `json:"proof"`
	MerkleContext       MerkleContext   `json:"merkle_context"`
	MerkleTreeRootIndex uint16          `json:"merkle_tree_root_index"`
	LeafIndexes         []uint32        `json:"leaf_indexes"`
	PoolConfig          PoolConfig      `json:"pool_config"`
	AccountIDs          [][32]byte      `json:"account_ids"`
	Accounts            []PoolAccount   `json:"accounts"`
}
