package enum

// MoveReason tags a stock movement with the business event that caused it
type MoveReason string

const (
	MoveReasonReceipt        MoveReason = "RECEIPT"
	MoveReasonSale           MoveReason = "SALE"
	MoveReasonTransferOut    MoveReason = "TRANSFER_OUT"
	MoveReasonTransferIn     MoveReason = "TRANSFER_IN"
	MoveReasonAdjustIncrease MoveReason = "ADJUST_INCREASE"
	MoveReasonAdjustDecrease MoveReason = "ADJUST_DECREASE"
)

func (r MoveReason) String() string {
	return string(r)
}

// Valid reports whether the reason is one of the known movement reasons
func (r MoveReason) Valid() bool {
	switch r {
	case MoveReasonReceipt, MoveReasonSale, MoveReasonTransferOut,
		MoveReasonTransferIn, MoveReasonAdjustIncrease, MoveReasonAdjustDecrease:
		return true
	}
	return false
}

// Reference types linking a movement back to its originating document
const (
	RefTypePurchaseOrder    = "PO"
	RefTypeSalesTransaction = "SALES_TRANSACTION"
	RefTypeTransfer         = "TRF"
	RefTypeAdjustment       = "ADJ"
)
