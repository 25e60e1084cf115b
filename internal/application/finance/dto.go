package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest represents a request to record a payment. Exactly
// one of vendor_id or client_id must be set.
type RecordPaymentRequest struct {
	VendorID        *uuid.UUID      `json:"vendor_id"`
	ClientID        *uuid.UUID      `json:"client_id"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Type            string          `json:"type" binding:"required,oneof=CREDIT DEBIT"`
	Method          string          `json:"method" binding:"omitempty,oneof=CASH BANK_TRANSFER CHEQUE CREDIT_CARD DEBIT_CARD ONLINE OTHER"`
	PaymentDate     *time.Time      `json:"payment_date"`
	Description     string          `json:"description" binding:"required"`
	ReferenceNumber string          `json:"reference_number" binding:"max=100"`
	PurchaseOrderID *uuid.UUID      `json:"purchase_order_id"`
	SalesOrderID    *uuid.UUID      `json:"sales_order_id"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID              uuid.UUID             `json:"id"`
	VendorID        *uuid.UUID            `json:"vendor_id,omitempty"`
	ClientID        *uuid.UUID            `json:"client_id,omitempty"`
	Amount          decimal.Decimal       `json:"amount"`
	Type            finance.PaymentType   `json:"type"`
	Method          finance.PaymentMethod `json:"method"`
	PaymentDate     time.Time             `json:"payment_date"`
	Description     string                `json:"description"`
	ReferenceNumber string                `json:"reference_number,omitempty"`
	PurchaseOrderID *uuid.UUID            `json:"purchase_order_id,omitempty"`
	SalesOrderID    *uuid.UUID            `json:"sales_order_id,omitempty"`
	IsReconciled    bool                  `json:"is_reconciled"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// ToPaymentResponse converts a payment aggregate to a response DTO
func ToPaymentResponse(payment *finance.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              payment.ID,
		VendorID:        payment.VendorID,
		ClientID:        payment.ClientID,
		Amount:          payment.Amount,
		Type:            payment.Type,
		Method:          payment.Method,
		PaymentDate:     payment.PaymentDate,
		Description:     payment.Description,
		ReferenceNumber: payment.ReferenceNumber,
		PurchaseOrderID: payment.PurchaseOrderID,
		SalesOrderID:    payment.SalesOrderID,
		IsReconciled:    payment.IsReconciled,
		CreatedAt:       payment.CreatedAt,
		UpdatedAt:       payment.UpdatedAt,
	}
}

// PaymentListFilter represents filter options for payment listing
type PaymentListFilter struct {
	VendorID  *uuid.UUID `form:"vendor_id"`
	ClientID  *uuid.UUID `form:"client_id"`
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// LedgerEntryResponse represents a ledger entry in API responses
type LedgerEntryResponse struct {
	ID           uuid.UUID         `json:"id"`
	PaymentID    *uuid.UUID        `json:"payment_id,omitempty"`
	EntryDate    time.Time         `json:"entry_date"`
	Description  string            `json:"description"`
	DebitAmount  decimal.Decimal   `json:"debit_amount"`
	CreditAmount decimal.Decimal   `json:"credit_amount"`
	Type         finance.EntryType `json:"type"`
	ReferenceID  *uuid.UUID        `json:"reference_id,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// ToLedgerEntryResponse converts a ledger entry to a response DTO
func ToLedgerEntryResponse(entry *finance.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:           entry.ID,
		PaymentID:    entry.PaymentID,
		EntryDate:    entry.EntryDate,
		Description:  entry.Description,
		DebitAmount:  entry.DebitAmount,
		CreditAmount: entry.CreditAmount,
		Type:         entry.Type,
		ReferenceID:  entry.ReferenceID,
		CreatedAt:    entry.CreatedAt,
	}
}

// TrialBalanceResponse summarizes the ledger over a date range
type TrialBalanceResponse struct {
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	TotalDebits  decimal.Decimal `json:"total_debits"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	Balance      decimal.Decimal `json:"balance"` // Credits minus debits
}

// CalculateProfitLossRequest selects the reporting period, dates inclusive
type CalculateProfitLossRequest struct {
	PeriodStart time.Time `json:"period_start" binding:"required" time_format:"2006-01-02"`
	PeriodEnd   time.Time `json:"period_end" binding:"required" time_format:"2006-01-02"`
}

// ProfitLossResponse represents a profit and loss report in API responses
type ProfitLossResponse struct {
	ID               uuid.UUID       `json:"id"`
	PeriodStart      time.Time       `json:"period_start"`
	PeriodEnd        time.Time       `json:"period_end"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalCostOfGoods decimal.Decimal `json:"total_cost_of_goods"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	GrossProfit      decimal.Decimal `json:"gross_profit"`
	NetProfit        decimal.Decimal `json:"net_profit"`
	IsProfitable     bool            `json:"is_profitable"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToProfitLossResponse converts a profit/loss report to a response DTO
func ToProfitLossResponse(report *finance.ProfitLossReport) ProfitLossResponse {
	return ProfitLossResponse{
		ID:               report.ID,
		PeriodStart:      report.PeriodStart,
		PeriodEnd:        report.PeriodEnd,
		TotalRevenue:     report.TotalRevenue,
		TotalCostOfGoods: report.TotalCostOfGoods,
		TotalExpenses:    report.TotalExpenses,
		GrossProfit:      report.GrossProfit,
		NetProfit:        report.NetProfit,
		IsProfitable:     report.IsProfitable(),
		CreatedAt:        report.CreatedAt,
		UpdatedAt:        report.UpdatedAt,
	}
}
