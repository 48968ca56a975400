package models

// Debt represents one recorded transaction: the debtor owes the creditor
// for a quantity of a menu item.
//
// TotalPrice is resolved once at creation time (unit price times quantity,
// where the unit price is the supplied custom price if any, otherwise the
// menu item's price at that moment) and never recomputed.
type Debt struct {
	// ID is the unique identifier for the debt (UUID format).
	ID string `json:"id"`

	// DebtorID is the user who owes money.
	DebtorID string `json:"debtorId"`

	// CreditorID is the user who is owed money (the one who paid).
	CreditorID string `json:"creditorId"`

	// MenuItemID is the item the debt is for.
	MenuItemID string `json:"menuItemId"`

	// Quantity is the number of units. Must be > 0.
	Quantity int `json:"quantity"`

	// TotalPrice is the resolved total, frozen at creation.
	TotalPrice float64 `json:"totalPrice"`

	// Date is the Unix timestamp of the transaction. Defaults to the
	// creation time.
	Date int64 `json:"date"`

	// Debtor, Creditor and MenuItem are populated by the storage layer
	// when listing or fetching debts so responses can inline them.
	Debtor   *User     `json:"debtor,omitempty"`
	Creditor *User     `json:"creditor,omitempty"`
	MenuItem *MenuItem `json:"menuItem,omitempty"`
}
