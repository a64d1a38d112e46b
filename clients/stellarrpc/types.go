package stellarrpc

// This file mirrors the JSON-RPC request/response shapes of Soroban RPC's
// own `methods` package, confirmed against the soroban-rpc test suite in
// the retrieved corpus (methods.SimulateTransactionRequest/Response,
// methods.SendTransactionRequest/Response, methods.GetTransactionRequest/
// Response). Field names and json tags match the wire protocol exactly so
// CallResult can unmarshal directly into these structs.

// Cost reports the resource consumption of a simulated invocation.
type Cost struct {
	CPUInstructions uint64 `json:"cpuInsns,string"`
	MemoryBytes     uint64 `json:"memBytes,string"`
}

// LedgerEntryChange is a single (before, after) pair describing how
// simulation or execution would affect one ledger entry.
type LedgerEntryChange struct {
	Type   string `json:"type"`
	Key    string `json:"key"`
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

// GetHealthRequest carries no parameters.
type GetHealthRequest struct{}

// GetHealthResponse reports node liveness.
type GetHealthResponse struct {
	Status                string `json:"status"`
	LatestLedger           uint32 `json:"latestLedger"`
	OldestLedger           uint32 `json:"oldestLedger"`
	LedgerRetentionWindow  uint32 `json:"ledgerRetentionWindow"`
}

// GetLatestLedgerRequest carries no parameters.
type GetLatestLedgerRequest struct{}

// GetLatestLedgerResponse reports the most recent ledger the node has
// ingested.
type GetLatestLedgerResponse struct {
	ID              string `json:"id"`
	ProtocolVersion uint32 `json:"protocolVersion"`
	Sequence        uint32 `json:"sequence"`
}

// GetNetworkRequest carries no parameters.
type GetNetworkRequest struct{}

// GetNetworkResponse reports the network the RPC node is configured for.
type GetNetworkResponse struct {
	FriendbotURL    string `json:"friendbotUrl,omitempty"`
	Passphrase      string `json:"passphrase"`
	ProtocolVersion uint32 `json:"protocolVersion"`
}

// GetLedgerEntriesRequest asks for the current value of a set of ledger
// entries, identified by base64 XDR LedgerKeys.
type GetLedgerEntriesRequest struct {
	Keys []string `json:"keys"`
}

// LedgerEntryResult is one entry in GetLedgerEntriesResponse.Entries.
type LedgerEntryResult struct {
	Key                string `json:"key"`
	XDR                string `json:"xdr"`
	LastModifiedLedger uint32 `json:"lastModifiedLedgerSeq"`
	LiveUntilLedgerSeq *uint32 `json:"liveUntilLedgerSeq,omitempty"`
}

// GetLedgerEntriesResponse is the reply to getLedgerEntries.
type GetLedgerEntriesResponse struct {
	Entries      []LedgerEntryResult `json:"entries"`
	LatestLedger uint32              `json:"latestLedger"`
}

// RestorePreamble is present on a SimulateTransactionResponse when the
// transaction touched expired entries that must be restored first.
type RestorePreamble struct {
	TransactionData string `json:"transactionData"`
	MinResourceFee  int64  `json:"minResourceFee,string"`
}

// SimulateHostFunctionResult is one entry in
// SimulateTransactionResponse.Results, one per invoked host function.
type SimulateHostFunctionResult struct {
	XDR  string   `json:"xdr"`
	Auth []string `json:"auth,omitempty"`
}

// SimulateTransactionRequest asks the RPC node to preflight a transaction
// without submitting it.
type SimulateTransactionRequest struct {
	Transaction string `json:"transaction"`
}

// SimulateTransactionResponse is the reply to simulateTransaction. Error is
// non-empty exactly when simulation failed; callers should check it before
// trusting any other field.
type SimulateTransactionResponse struct {
	Error           string                       `json:"error,omitempty"`
	TransactionData string                       `json:"transactionData,omitempty"`
	MinResourceFee  int64                        `json:"minResourceFee,string"`
	Results         []SimulateHostFunctionResult `json:"results,omitempty"`
	RestorePreamble *RestorePreamble             `json:"restorePreamble,omitempty"`
	Events          []string                     `json:"events,omitempty"`
	LatestLedger    int64                        `json:"latestLedger"`
	Cost            Cost                         `json:"cost"`
}

// SendTransactionStatus is the status field of SendTransactionResponse.
type SendTransactionStatus string

const (
	SendTransactionStatusPending      SendTransactionStatus = "PENDING"
	SendTransactionStatusDuplicate    SendTransactionStatus = "DUPLICATE"
	SendTransactionStatusTryAgainLater SendTransactionStatus = "TRY_AGAIN_LATER"
	SendTransactionStatusError        SendTransactionStatus = "ERROR"
)

// SendTransactionRequest submits a signed, assembled transaction envelope.
type SendTransactionRequest struct {
	Transaction string `json:"transaction"`
}

// SendTransactionResponse is the reply to sendTransaction. It reports only
// whether the node accepted the transaction into its queue, not whether the
// transaction ultimately succeeded; poll getTransaction(Hash) for that.
type SendTransactionResponse struct {
	Status                SendTransactionStatus `json:"status"`
	Hash                  string                `json:"hash"`
	LatestLedger          int64                 `json:"latestLedger"`
	LatestLedgerCloseTime int64                 `json:"latestLedgerCloseTime,string"`
	ErrorResultXDR        string                `json:"errorResultXdr,omitempty"`
	DiagnosticEventsXDR   []string              `json:"diagnosticEventsXdr,omitempty"`
}

// TransactionStatus is the status field of GetTransactionResponse.
type TransactionStatus string

const (
	TransactionStatusSuccess  TransactionStatus = "SUCCESS"
	TransactionStatusNotFound TransactionStatus = "NOT_FOUND"
	TransactionStatusFailed   TransactionStatus = "FAILED"
)

// GetTransactionRequest asks for the outcome of a previously submitted
// transaction, identified by its hex transaction hash.
type GetTransactionRequest struct {
	Hash string `json:"hash"`
}

// GetTransactionResponse is the reply to getTransaction.
type GetTransactionResponse struct {
	Status                TransactionStatus `json:"status"`
	LatestLedger          int64             `json:"latestLedger"`
	LatestLedgerCloseTime int64             `json:"latestLedgerCloseTime,string"`
	OldestLedger          int64             `json:"oldestLedger"`
	OldestLedgerCloseTime int64             `json:"oldestLedgerCloseTime,string"`
	Ledger                int64             `json:"ledger,omitempty"`
	LedgerCloseTime       int64             `json:"createdAt,string,omitempty"`
	EnvelopeXDR           string            `json:"envelopeXdr,omitempty"`
	ResultXdr             string            `json:"resultXdr,omitempty"`
	ResultMetaXdr         string            `json:"resultMetaXdr,omitempty"`
	DiagnosticEventsXDR   []string          `json:"diagnosticEventsXdr,omitempty"`
}
