package ntru

import (
	ntruio "ntruenc/ntru/io"
	"testing"
)

func TestValidateRejectsNonMultipleOfEightDb(t *testing.T) {
	p := APR2011_439()
	p.Db = 9
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for Db not a multiple of 8")
	}
}

func TestValidateRejectsPartialProductForm(t *testing.T) {
	p := APR2011_439_FAST()
	p.Df3 = 0
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for partially-specified product-form sparsity")
	}
}

func TestProductFormDetection(t *testing.T) {
	if !APR2011_439_FAST().ProductForm() {
		t.Fatal("APR2011_439_FAST should report ProductForm() == true")
	}
	if APR2011_439().ProductForm() {
		t.Fatal("APR2011_439 should report ProductForm() == false")
	}
}

func TestIGFIndexBitsDefaultsToCeilLog2N(t *testing.T) {
	p := APR2011_439()
	p.C = 0
	if got, want := p.IGFIndexBits(), ceilLog2(p.N); got != want {
		t.Fatalf("IGFIndexBits() = %d, want %d", got, want)
	}
	p.C = 10
	if got := p.IGFIndexBits(); got != 10 {
		t.Fatalf("IGFIndexBits() with override = %d, want 10", got)
	}
}

func TestApplyOverridesRederivesLengths(t *testing.T) {
	base := APR2011_439()
	newDf := 11
	newDb := 128
	o := ntruio.Overrides{Df: &newDf, Db: &newDb}
	out := ApplyOverrides(base, o)
	if out.Df != newDf {
		t.Fatalf("Df = %d, want %d", out.Df, newDf)
	}
	if out.Db != newDb {
		t.Fatalf("Db = %d, want %d", out.Db, newDb)
	}
	if out.PkLen != newDb/2 {
		t.Fatalf("PkLen = %d, want %d (re-derived from new Db)", out.PkLen, newDb/2)
	}
	if out.N != base.N {
		t.Fatalf("N changed unexpectedly: got %d want %d", out.N, base.N)
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for _, p := range AllPresets() {
		if err := p.Validate(); err != nil {
			t.Fatalf("%s: Validate: %v", p.Name, err)
		}
		if p.MaxMsgLenBytes <= 0 {
			t.Fatalf("%s: MaxMsgLenBytes = %d, want > 0", p.Name, p.MaxMsgLenBytes)
		}
	}
}
