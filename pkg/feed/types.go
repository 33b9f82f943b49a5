package feed

// Record is a certificate-transparency stream message. Only the fields the
// monitor consumes are mapped; everything else in the upstream payload is
// ignored.
type Record struct {
	MessageType string `json:"message_type"`
	Data        Data   `json:"data"`
}

// Data is the payload of a certificate update
type Data struct {
	UpdateType string    `json:"update_type"`
	LeafCert   *LeafCert `json:"leaf_cert"`
	Seen       float64   `json:"seen"`
}

// LeafCert carries the issued certificate fields used for matching and evidence
type LeafCert struct {
	Subject      map[string]string `json:"subject"`
	AllDomains   []string          `json:"all_domains"`
	Issuer       map[string]string `json:"issuer"`
	SerialNumber string            `json:"serial_number"`
	NotBefore    float64           `json:"not_before"`
	NotAfter     float64           `json:"not_after"`
}

// Valid reports whether the record is a certificate update with the fields
// the pipeline expects. Invalid records are dropped silently, they are not
// connection errors.
func (r *Record) Valid() bool {
	return r.MessageType == "certificate_update" && r.Data.LeafCert != nil && r.Data.LeafCert.Subject != nil
}

// IssuerCN returns the issuer common name, or "Unknown"
func (l *LeafCert) IssuerCN() string {
	if cn, ok := l.Issuer["CN"]; ok && cn != "" {
		return cn
	}
	return "Unknown"
}
