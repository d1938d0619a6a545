package proto

type PackRequest struct {
	// Name is the name of the deposit file, only used for logging
	Name string `json:"name"`
	Data []byte `json:"data"`
}

type CurrentRequest struct {
}

type PackResponse struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Count                 uint64   `json:"count"`
	Pubkeys               string   `json:"pubkeys"`
	WithdrawalCredentials string   `json:"withdrawal_credentials"`
	Signatures            string   `json:"signatures"`
	DepositDataRoots      []string `json:"deposit_data_roots"`
	Value                 string   `json:"value"`
	ValueEther            string   `json:"value_ether"`
	Calldata              string   `json:"calldata"`
}
