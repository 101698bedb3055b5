// Package keys handles JSON persistence for NTRUEncrypt key material,
// following the same on-disk shape (a fixed ./ntru_keys directory,
// indented JSON, a version tag) this codebase's tooling used for its
// own key files.
package keys

import (
	"encoding/base64"
	"encoding/json"
	"os"
)

// PublicKey is an NTRUEncrypt public key persisted to JSON: the named
// parameter set plus h's coefficients base64-encoded in their
// bit-exact wire form.
type PublicKey struct {
	Version    string `json:"version"`
	ParamsName string `json:"params"`
	N          int    `json:"N"`
	Q          int64  `json:"Q"`
	H          string `json:"h"`
}

// NewPublicKey encodes h into the persisted wire form.
func NewPublicKey(paramsName string, n int, q int64, hBytes []byte) *PublicKey {
	return &PublicKey{
		Version:    "ntruencrypt-v1",
		ParamsName: paramsName,
		N:          n,
		Q:          q,
		H:          base64.StdEncoding.EncodeToString(hBytes),
	}
}

// HBytes decodes the stored h back into its wire form.
func (pk *PublicKey) HBytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(pk.H)
}

// SavePublic writes the public key to ./ntru_keys/public.json.
func SavePublic(pk *PublicKey) error {
	if pk == nil {
		return nil
	}
	if err := os.MkdirAll("ntru_keys", 0o755); err != nil {
		return err
	}
	f, err := os.Create("ntru_keys/public.json")
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(pk)
}

// LoadPublic reads the public key from ./ntru_keys/public.json.
func LoadPublic() (*PublicKey, error) {
	data, err := os.ReadFile("ntru_keys/public.json")
	if err != nil {
		return nil, err
	}
	var pk PublicKey
	if err := json.Unmarshal(data, &pk); err != nil {
		return nil, err
	}
	return &pk, nil
}
