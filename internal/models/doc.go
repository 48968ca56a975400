// Package models defines the core domain models for lunchledger.
//
// Four entity types are persisted:
//   - User: a member of the group
//   - Restaurant: a place the group orders from
//   - MenuItem: an item on a restaurant's menu with a default price
//   - Debt: one recorded transaction (debtor owes creditor for an item)
//
// Relationships are expressed through ID strings rather than pointers to
// avoid circular references; the optional Debtor/Creditor/MenuItem fields
// on Debt are populated by the storage layer when listing debts so API
// responses can inline them.
package models
