package types

// Msg is implemented by every message the release module handles.
type Msg interface {
	ValidateBasic() error
	// Signers are the bech32 addresses that must have signed the transaction.
	Signers() []string
}

var (
	_ Msg = (*MsgInitRelease)(nil)
	_ Msg = (*MsgPurchase)(nil)
	_ Msg = (*MsgUpdateRelease)(nil)
	_ Msg = (*MsgUpdateMetadata)(nil)
	_ Msg = (*MsgCloseRelease)(nil)
	_ Msg = (*MsgInitAndPurchase)(nil)
	_ Msg = (*MsgUpdateParams)(nil)
)

// MsgInitRelease creates the release token, its metadata and the release
// record. RoyaltyAccount defaults to Authority when empty.
type MsgInitRelease struct {
	Payer          string `json:"payer"`
	Authority      string `json:"authority"`
	Mint           string `json:"mint"`
	PaymentDenom   string `json:"payment_denom"`
	RoyaltyAccount string `json:"royalty_account,omitempty"`
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	URI            string `json:"uri"`
	TotalSupply    uint64 `json:"total_supply"`
	Price          uint64 `json:"price"`
	Bump           uint8  `json:"bump"`
}

type MsgPurchase struct {
	Payer         string         `json:"payer"`
	Receiver      string         `json:"receiver"`
	Mint          string         `json:"mint"`
	Amount        uint64         `json:"amount"`
	Bump          uint8          `json:"bump"`
	RewardDeposit *RewardDeposit `json:"reward_deposit,omitempty"`
}

type MsgUpdateRelease struct {
	Payer       string `json:"payer"`
	Mint        string `json:"mint"`
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Bump        uint8  `json:"bump"`
	Price       uint64 `json:"price"`
	TotalSupply uint64 `json:"total_supply"`
}

// MsgUpdateMetadata rewrites only the metadata URI of a release token.
type MsgUpdateMetadata struct {
	Payer string `json:"payer"`
	Mint  string `json:"mint"`
	URI   string `json:"uri"`
	Bump  uint8  `json:"bump"`
}

type MsgCloseRelease struct {
	Payer string `json:"payer"`
	Mint  string `json:"mint"`
}

// MsgInitAndPurchase initializes a release and buys its first unit for
// Receiver in the same transaction.
type MsgInitAndPurchase struct {
	Payer          string `json:"payer"`
	Authority      string `json:"authority"`
	Receiver       string `json:"receiver"`
	Mint           string `json:"mint"`
	PaymentDenom   string `json:"payment_denom"`
	RoyaltyAccount string `json:"royalty_account,omitempty"`
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	URI            string `json:"uri"`
	TotalSupply    uint64 `json:"total_supply"`
	Price          uint64 `json:"price"`
	Bump           uint8  `json:"bump"`
}

type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

func (msg *MsgInitRelease) Signers() []string { return []string{msg.Payer} }
func (msg *MsgUpdateRelease) Signers() []string { return []string{msg.Payer} }
func (msg *MsgUpdateMetadata) Signers() []string { return []string{msg.Payer} }
func (msg *MsgCloseRelease) Signers() []string { return []string{msg.Payer} }
func (msg *MsgUpdateParams) Signers() []string { return []string{msg.Authority} }

// Signers includes the receiver because the payment is debited from it.
func (msg *MsgPurchase) Signers() []string { return payerAndReceiver(msg.Payer, msg.Receiver) }

func (msg *MsgInitAndPurchase) Signers() []string {
	return payerAndReceiver(msg.Payer, msg.Receiver)
}

func payerAndReceiver(payer, receiver string) []string {
	if payer == receiver {
		return []string{payer}
	}
	return []string{payer, receiver}
}

// InitMsg returns the init half of the combined message.
func (msg *MsgInitAndPurchase) InitMsg() *MsgInitRelease {
	return &MsgInitRelease{
		Payer:          msg.Payer,
		Authority:      msg.Authority,
		Mint:           msg.Mint,
		PaymentDenom:   msg.PaymentDenom,
		RoyaltyAccount: msg.RoyaltyAccount,
		Name:           msg.Name,
		Symbol:         msg.Symbol,
		URI:            msg.URI,
		TotalSupply:    msg.TotalSupply,
		Price:          msg.Price,
		Bump:           msg.Bump,
	}
}

// PurchaseMsg returns the purchase half of the combined message.
func (msg *MsgInitAndPurchase) PurchaseMsg() *MsgPurchase {
	return &MsgPurchase{
		Payer:    msg.Payer,
		Receiver: msg.Receiver,
		Mint:     msg.Mint,
		Amount:   msg.Price,
		Bump:     msg.Bump,
	}
}
