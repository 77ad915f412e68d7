// Package market holds the dashboard actions and the sample listings shown
// until the contracts are wired. Actions only validate their input; nothing
// is sent on-chain.
package market

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"landshare-tui/notify"

	"github.com/dustin/go-humanize"
)

// ValidationError reports an incomplete form. Message is shown to the user
// as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// TokenizeRequest is the admin "Tokenize Land" form.
type TokenizeRequest struct {
	Location    string
	Acres       string
	MetadataURI string
}

// Validate requires location and acres; the metadata URI is optional.
func (r TokenizeRequest) Validate() error {
	if blank(r.Location) || blank(r.Acres) {
		return &ValidationError{Message: "Please fill in all required fields"}
	}
	return nil
}

// FeeRequest is the admin "Platform Fee" form.
type FeeRequest struct {
	FeePercentage string
}

// Validate requires the fee.
func (r FeeRequest) Validate() error {
	if blank(r.FeePercentage) {
		return &ValidationError{Message: "Please enter a fee percentage"}
	}
	return nil
}

// BuyRequest is the investor "Buy From Admin" form.
type BuyRequest struct {
	LandID string
	Units  string
}

// Validate requires every field.
func (r BuyRequest) Validate() error {
	if blank(r.LandID) || blank(r.Units) {
		return &ValidationError{Message: "Please fill in all fields"}
	}
	return nil
}

// ListingRequest is the investor "List For Sale" form.
type ListingRequest struct {
	LandID       string
	Units        string
	PricePerUnit string
}

// Validate requires every field.
func (r ListingRequest) Validate() error {
	if blank(r.LandID) || blank(r.Units) || blank(r.PricePerUnit) {
		return &ValidationError{Message: "Please fill in all fields"}
	}
	return nil
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// Form is a dashboard action form.
type Form interface {
	Validate() error
	Confirmation() (title, description string)
}

// Confirmation is the toast shown when the form is accepted.
func (r TokenizeRequest) Confirmation() (string, string) {
	return "Tokenizing Land", "Processing tokenization for " + r.Location
}

// Confirmation is the toast shown when the form is accepted.
func (r FeeRequest) Confirmation() (string, string) {
	return "Setting Platform Fee", fmt.Sprintf("Setting fee to %s%%", r.FeePercentage)
}

// Confirmation is the toast shown when the form is accepted.
func (r BuyRequest) Confirmation() (string, string) {
	return "Processing Purchase", fmt.Sprintf("Buying %s units of Land #%s", r.Units, r.LandID)
}

// Confirmation is the toast shown when the form is accepted.
func (r ListingRequest) Confirmation() (string, string) {
	return "Listing for Sale", fmt.Sprintf("Listing %s units at $%s each", r.Units, r.PricePerUnit)
}

// Submit validates f and returns the toast to show: an error toast with the
// validation message, or the form's confirmation.
func Submit(f Form) (notify.Notification, error) {
	if err := f.Validate(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return notify.Error(verr.Message), err
		}
		return notify.Error(err.Error()), err
	}
	return notify.Info(f.Confirmation()), nil
}

// Withdraw is the toast for the fee withdrawal action, which takes no input.
func Withdraw() notify.Notification {
	return notify.Info("Withdrawing Fees", "Processing fee withdrawal...")
}

// Parcel is a tokenized land parcel as listed on the admin console.
type Parcel struct {
	ID       int
	Location string
	Acres    float64
	Status   string
	Value    string
}

// Holding is one line of an investor portfolio.
type Holding struct {
	LandID     int
	Location   string
	Units      int
	TotalValue string
	Percentage int
}

// Listing is a marketplace sale offer.
type Listing struct {
	SaleID       int
	LandID       int
	Seller       string
	Units        int
	PricePerUnit string
	Total        string
}

// Transaction is an entry in the investor's history.
type Transaction struct {
	Type   string
	LandID int
	Amount string
	Value  string
	Date   string
}

// Parcels returns the sample parcel list.
func Parcels() []Parcel {
	return []Parcel{
		{ID: 1, Location: "Chennai Downtown", Acres: 5, Status: "Active", Value: "$250,000"},
		{ID: 2, Location: "Mumbai Hills", Acres: 3.2, Status: "Active", Value: "$180,000"},
		{ID: 3, Location: "Bangalore Tech Park", Acres: 7.5, Status: "Pending", Value: "$420,000"},
	}
}

// Portfolio returns the sample holdings.
func Portfolio() []Holding {
	return []Holding{
		{LandID: 1, Location: "Chennai Downtown", Units: 250, TotalValue: "$12,500", Percentage: 35},
		{LandID: 2, Location: "Mumbai Hills", Units: 180, TotalValue: "$9,000", Percentage: 25},
		{LandID: 3, Location: "Bangalore Tech Park", Units: 320, TotalValue: "$19,200", Percentage: 40},
	}
}

// Marketplace returns the sample sale listings.
func Marketplace() []Listing {
	return []Listing{
		{SaleID: 1, LandID: 2, Seller: "0x742d...3A8B", Units: 100, PricePerUnit: "$45", Total: "$4,500"},
		{SaleID: 2, LandID: 1, Seller: "0x8F9C...7D2E", Units: 75, PricePerUnit: "$52", Total: "$3,900"},
		{SaleID: 3, LandID: 3, Seller: "0x6A1B...4F9C", Units: 200, PricePerUnit: "$58", Total: "$11,600"},
	}
}

// Transactions returns the sample history.
func Transactions() []Transaction {
	return []Transaction{
		{Type: "Purchase", LandID: 1, Amount: "250 units", Value: "$12,500", Date: "2024-08-20"},
		{Type: "Sale", LandID: 2, Amount: "50 units", Value: "$2,500", Date: "2024-08-18"},
		{Type: "Purchase", LandID: 3, Amount: "100 units", Value: "$6,000", Date: "2024-08-15"},
	}
}

// PortfolioValue sums the holdings' dollar values. Values that do not parse
// count as zero.
func PortfolioValue(holdings []Holding) int {
	total := 0
	for _, h := range holdings {
		total += ParseDollars(h.TotalValue)
	}
	return total
}

// ParseDollars reads the integer part of a "$12,500" style amount.
func ParseDollars(s string) int {
	s = strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// FormatDollars renders n as "$41,700".
func FormatDollars(n int) string {
	if n < 0 {
		return "-$" + humanize.Comma(int64(-n))
	}
	return "$" + humanize.Comma(int64(n))
}
