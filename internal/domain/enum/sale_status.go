package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SaleStatus represents the status of a sales transaction
type SaleStatus int

const (
	SaleStatusCompleted SaleStatus = 0
	SaleStatusVoided    SaleStatus = 1
)

func (s SaleStatus) String() string {
	names := [...]string{"COMPLETED", "VOIDED"}
	if int(s) < 0 || int(s) >= len(names) {
		return "COMPLETED"
	}
	return names[s]
}

func (s SaleStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SaleStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = SaleStatus(i)
		return nil
	}
	switch str {
	case "COMPLETED":
		*s = SaleStatusCompleted
	case "VOIDED":
		*s = SaleStatusVoided
	}
	return nil
}

func (s SaleStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *SaleStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SaleStatusCompleted
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = SaleStatus(v)
	case int:
		*s = SaleStatus(v)
	}
	return nil
}

// PaymentMethod represents how a sale was paid for
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodMobile PaymentMethod = "MOBILE"
)

// Valid reports whether the payment method is supported
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMobile:
		return true
	}
	return false
}
