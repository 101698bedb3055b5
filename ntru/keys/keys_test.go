package keys

import (
	"bytes"
	"os"
	"testing"
)

// chdirTemp switches the working directory to a fresh temp dir for the
// duration of the test, since Save/Load work against a fixed relative
// ./ntru_keys path.
func chdirTemp(t *testing.T) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		os.Chdir(orig)
	})
}

func TestPublicKeySaveLoadRoundTrip(t *testing.T) {
	chdirTemp(t)

	hBytes := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	pk := NewPublicKey("APR2011_439", 439, 2048, hBytes)
	if err := SavePublic(pk); err != nil {
		t.Fatalf("SavePublic: %v", err)
	}
	loaded, err := LoadPublic()
	if err != nil {
		t.Fatalf("LoadPublic: %v", err)
	}
	if loaded.ParamsName != pk.ParamsName || loaded.N != pk.N || loaded.Q != pk.Q {
		t.Fatalf("metadata mismatch: got %+v want %+v", loaded, pk)
	}
	got, err := loaded.HBytes()
	if err != nil {
		t.Fatalf("HBytes: %v", err)
	}
	if !bytes.Equal(got, hBytes) {
		t.Fatalf("HBytes mismatch: got %v want %v", got, hBytes)
	}
}

func TestPrivateKeySaveLoadRoundTrip(t *testing.T) {
	chdirTemp(t)

	fBytes := []byte{9, 8, 7, 6}
	fpBytes := []byte{1, 0, 1, 0}
	sk := NewPrivateKey("APR2011_439", 439, 2048, false, true, fBytes, fpBytes)
	if err := SavePrivate(sk); err != nil {
		t.Fatalf("SavePrivate: %v", err)
	}
	loaded, err := LoadPrivate()
	if err != nil {
		t.Fatalf("LoadPrivate: %v", err)
	}
	if loaded.ParamsName != sk.ParamsName || loaded.Sparse != sk.Sparse || loaded.ProductForm != sk.ProductForm {
		t.Fatalf("metadata mismatch: got %+v want %+v", loaded, sk)
	}
	gotF, err := loaded.FBytes()
	if err != nil {
		t.Fatalf("FBytes: %v", err)
	}
	if !bytes.Equal(gotF, fBytes) {
		t.Fatalf("FBytes mismatch: got %v want %v", gotF, fBytes)
	}
	gotFp, err := loaded.FpBytes()
	if err != nil {
		t.Fatalf("FpBytes: %v", err)
	}
	if !bytes.Equal(gotFp, fpBytes) {
		t.Fatalf("FpBytes mismatch: got %v want %v", gotFp, fpBytes)
	}
}

func TestLoadPublicMissingFile(t *testing.T) {
	chdirTemp(t)
	if _, err := LoadPublic(); err == nil {
		t.Fatal("expected error loading nonexistent public key")
	}
}

func TestEncodeSignBasisRoundTrip(t *testing.T) {
	f := []byte{1, 2, 3}
	fPrime := []byte{4, 5, 6}
	h := []byte{7, 8, 9}

	row0 := EncodeSignBasis(0, Standard, 439, 2048, f, fPrime, h)
	if row0.H != "" {
		t.Fatalf("row 0 should omit h, got %q", row0.H)
	}
	gotF, err := row0.FBytes()
	if err != nil {
		t.Fatalf("FBytes: %v", err)
	}
	if string(gotF) != string(f) {
		t.Fatalf("FBytes mismatch: got %v want %v", gotF, f)
	}

	row1 := EncodeSignBasis(1, Transpose, 439, 2048, f, fPrime, h)
	gotH, err := row1.HBytes()
	if err != nil {
		t.Fatalf("HBytes: %v", err)
	}
	if string(gotH) != string(h) {
		t.Fatalf("HBytes mismatch: got %v want %v", gotH, h)
	}
	if row1.Type != Transpose {
		t.Fatalf("Type = %v, want Transpose", row1.Type)
	}
}

func TestEncodeDecodeSeed(t *testing.T) {
	seed := []byte{10, 20, 30, 40}
	encoded := EncodeSeed(seed)
	decoded, err := DecodeSeed(encoded)
	if err != nil {
		t.Fatalf("DecodeSeed: %v", err)
	}
	if string(decoded) != string(seed) {
		t.Fatalf("round trip mismatch: got %v want %v", decoded, seed)
	}
}
