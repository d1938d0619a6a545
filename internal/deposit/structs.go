package deposit

const (
	PubkeyLength                = 48
	WithdrawalCredentialsLength = 32
	SignatureLength             = 96
	RootLength                  = 32

	// depositDataSize is the ssz size of DepositData
	depositDataSize = PubkeyLength + WithdrawalCredentialsLength + 8 + SignatureLength
)

// MinGweiAmount is the amount in gwei the deposit contract takes per validator
const MinGweiAmount = uint64(32000000000)

type DepositData struct {
	Pubkey                []byte `json:"pubkey" ssz-size:"48"`
	WithdrawalCredentials []byte `json:"withdrawal_credentials" ssz-size:"32"`
	Amount                uint64 `json:"amount"`
	Signature             []byte `json:"signature" ssz-size:"96"`
}

// Message returns the part of the deposit covered by the signature
func (d *DepositData) Message() *DepositMessage {
	return &DepositMessage{
		Pubkey:                d.Pubkey,
		WithdrawalCredentials: d.WithdrawalCredentials,
		Amount:                d.Amount,
	}
}

type DepositMessage struct {
	Pubkey                []byte `json:"pubkey" ssz-size:"48"`
	WithdrawalCredentials []byte `json:"withdrawal_credentials" ssz-size:"32"`
	Amount                uint64 `json:"amount"`
}

type SigningData struct {
	ObjectRoot []byte `ssz-size:"32"`
	Domain     []byte `ssz-size:"32"`
}

type ForkData struct {
	CurrentVersion        []byte `ssz-size:"4"`
	GenesisValidatorsRoot []byte `ssz-size:"32"`
}
