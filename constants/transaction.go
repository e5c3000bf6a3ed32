package constants

// TxType classifies a transaction as money in or money out.
type TxType string

const (
	TxRevenue TxType = "revenue"
	TxExpense TxType = "expense"
)

// TxStatus is the posting state of a transaction.
type TxStatus string

const (
	TxDraft  TxStatus = "draft"
	TxPosted TxStatus = "posted"
)

func ParseTxType(s string) (TxType, error) {
	return parseEnum("transaction type", s, TxType(""), []TxType{TxRevenue, TxExpense})
}

// ParseTxStatus defaults a blank cell to draft.
func ParseTxStatus(s string) (TxStatus, error) {
	return parseEnum("transaction status", s, TxDraft, []TxStatus{TxDraft, TxPosted})
}
