package keys

import (
	"encoding/base64"
	"encoding/json"
	"os"
)

// PrivateKey is an NTRUEncrypt private key persisted to JSON: f
// base64-encoded as ntru's PrivateKey.EncodeF writes it (the
// concatenated sparse encodings of f1, f2, f3 for a product-form key,
// ToBinary3Tight otherwise) and fp = f^-1 mod p, base64-encoded via
// IntegerPolynomial.ToBinary3Tight.
type PrivateKey struct {
	Version    string `json:"version"`
	ParamsName string `json:"params"`
	N          int    `json:"N"`
	Q          int64  `json:"Q"`
	ProductForm bool  `json:"product_form"`
	Sparse     bool   `json:"sparse"`
	F          string `json:"f"`
	Fp         string `json:"fp"`
}

// NewPrivateKey encodes f and fp into their persisted wire forms.
func NewPrivateKey(paramsName string, n int, q int64, productForm, sparse bool, fBytes, fpBytes []byte) *PrivateKey {
	return &PrivateKey{
		Version:     "ntruencrypt-v1",
		ParamsName:  paramsName,
		N:           n,
		Q:           q,
		ProductForm: productForm,
		Sparse:      sparse,
		F:           base64.StdEncoding.EncodeToString(fBytes),
		Fp:          base64.StdEncoding.EncodeToString(fpBytes),
	}
}

func (sk *PrivateKey) FBytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(sk.F)
}

func (sk *PrivateKey) FpBytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(sk.Fp)
}

// SavePrivate writes the private key to ./ntru_keys/private.json.
func SavePrivate(sk *PrivateKey) error {
	if sk == nil {
		return nil
	}
	if err := os.MkdirAll("ntru_keys", 0o755); err != nil {
		return err
	}
	f, err := os.Create("ntru_keys/private.json")
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(sk)
}

// LoadPrivate reads the private key from ./ntru_keys/private.json.
func LoadPrivate() (*PrivateKey, error) {
	data, err := os.ReadFile("ntru_keys/private.json")
	if err != nil {
		return nil, err
	}
	var sk PrivateKey
	if err := json.Unmarshal(data, &sk); err != nil {
		return nil, err
	}
	return &sk, nil
}
