package payment

import "time"

// Method identifies a Malaysian consumer payment channel.
type Method string

const (
	MethodTNG       Method = "TNG"
	MethodBoost     Method = "BOOST"
	MethodGrabPay   Method = "GRABPAY"
	MethodShopeePay Method = "SHOPEEPAY"
	MethodDuitNow   Method = "DUITNOW"
)

// methodLabels maps channels to the names people actually call them.
var methodLabels = map[Method]string{
	MethodTNG:       "Touch 'n Go eWallet",
	MethodBoost:     "Boost",
	MethodGrabPay:   "GrabPay",
	MethodShopeePay: "ShopeePay",
	MethodDuitNow:   "DuitNow",
}

// Label returns the display name for a method
func (m Method) Label() string {
	if label, ok := methodLabels[m]; ok {
		return label
	}
	return string(m)
}

// Valid reports whether the method is a supported channel
func (m Method) Valid() bool {
	_, ok := methodLabels[m]
	return ok
}

// Methods lists the supported channels in display order
func Methods() []Method {
	return []Method{MethodTNG, MethodBoost, MethodGrabPay, MethodShopeePay, MethodDuitNow}
}

// Profile is a participant's registered payment handle within a session:
// the wallet phone number or DuitNow ID friends should transfer to.
type Profile struct {
	ID            string    `json:"id"`
	SessionID     string    `json:"session_id"`
	ParticipantID string    `json:"participant_id"`
	Method        Method    `json:"method"`
	Handle        string    `json:"handle"`
	CreatedAt     time.Time `json:"created_at"`
}

// Link is a ready-to-share payment request for one settle-up transfer.
type Link struct {
	FromParticipant string  `json:"from_participant"`
	FromName        string  `json:"from_name"`
	ToParticipant   string  `json:"to_participant"`
	ToName          string  `json:"to_name"`
	Amount          float64 `json:"amount"`
	Method          Method  `json:"method,omitempty"`
	MethodLabel     string  `json:"method_label,omitempty"`
	Handle          string  `json:"handle,omitempty"`
	Message         string  `json:"message"`
	ShareURL        string  `json:"share_url"`
}
