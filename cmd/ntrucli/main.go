// Command ntrucli generates NTRUEncrypt key pairs and encrypts and
// decrypts messages under them.
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"

	ntru "ntruenc/ntru"
	ntruio "ntruenc/ntru/io"
	"ntruenc/ntru/keys"
)

func usage() {
	fmt.Println(`usage: ntrucli <gen|encrypt|decrypt> [options]

Subcommands:
  gen       Generate an NTRUEncrypt keypair and write ./ntru_keys/{public,private}.json
              -preset  <name>   parameter preset (default: APR2011_439)
              -params  <path>   JSON overrides file merged onto the preset

  encrypt   Encrypt a message with the public key in ./ntru_keys/public.json
              -m <string>       plaintext message (required)
              -hash <sha512|sha3-512>  hash function (default: sha512)
            Prints the base64-encoded ciphertext to stdout.

  decrypt   Decrypt a base64 ciphertext with ./ntru_keys/private.json
              -c <string>       base64 ciphertext (required)
              -hash <sha512|sha3-512>  hash function (default: sha512)
            Prints the recovered plaintext to stdout.`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "gen":
		runGen(os.Args[2:])
	case "encrypt":
		runEncrypt(os.Args[2:])
	case "decrypt":
		runDecrypt(os.Args[2:])
	default:
		usage()
	}
}

func presetByName(name string) (ntru.Params, error) {
	for _, p := range ntru.AllPresets() {
		if p.Name == name {
			return p, nil
		}
	}
	return ntru.Params{}, fmt.Errorf("unknown preset %q", name)
}

func hasherByName(name string) (ntru.Hasher, error) {
	switch name {
	case "", "sha512":
		return ntru.NewSHA512Hasher(), nil
	case "sha3-512":
		return ntru.NewSHA3Hasher(), nil
	default:
		return nil, fmt.Errorf("unknown hash %q", name)
	}
}

func runGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	preset := fs.String("preset", "APR2011_439", "parameter preset name")
	paramsPath := fs.String("params", "", "JSON overrides file")
	fs.Parse(args)

	par, err := presetByName(*preset)
	if err != nil {
		log.Fatalf("gen: %v", err)
	}
	if *paramsPath != "" {
		overrides, err := ntruio.LoadOverrides(*paramsPath)
		if err != nil {
			log.Fatalf("gen: %v", err)
		}
		par = ntru.ApplyOverrides(par, overrides)
	}

	oracle, err := ntru.NewPRNGOracle(nil)
	if err != nil {
		log.Fatalf("gen: %v", err)
	}
	kp, err := ntru.GenerateKeyPair(par, oracle)
	if err != nil {
		log.Fatalf("gen: %v", err)
	}

	hBytes := kp.Public.H.ToBinary(par.Q)
	pub := keys.NewPublicKey(par.Name, par.N, par.Q, hBytes)
	if err := keys.SavePublic(pub); err != nil {
		log.Fatalf("gen: writing public key: %v", err)
	}

	fBytes := kp.Private.EncodeF()
	fpBytes := kp.Private.Fp.ToBinary3Tight()
	priv := keys.NewPrivateKey(par.Name, par.N, par.Q, par.ProductForm(), par.Sparse, fBytes, fpBytes)
	if err := keys.SavePrivate(priv); err != nil {
		log.Fatalf("gen: writing private key: %v", err)
	}

	fmt.Println("keys written to ./ntru_keys")
}

func runEncrypt(args []string) {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	msg := fs.String("m", "", "plaintext message")
	hashName := fs.String("hash", "sha512", "hash function")
	fs.Parse(args)

	pub, err := loadPublicKey()
	if err != nil {
		log.Fatalf("encrypt: %v", err)
	}
	hasher, err := hasherByName(*hashName)
	if err != nil {
		log.Fatalf("encrypt: %v", err)
	}
	oracle, err := ntru.NewPRNGOracle(nil)
	if err != nil {
		log.Fatalf("encrypt: %v", err)
	}

	ct, err := ntru.Encrypt(pub, []byte(*msg), hasher, oracle)
	if err != nil {
		log.Fatalf("encrypt: %v", err)
	}
	fmt.Println(base64.StdEncoding.EncodeToString(ct))
}

func runDecrypt(args []string) {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	ctB64 := fs.String("c", "", "base64 ciphertext")
	hashName := fs.String("hash", "sha512", "hash function")
	fs.Parse(args)

	pub, err := loadPublicKey()
	if err != nil {
		log.Fatalf("decrypt: %v", err)
	}
	priv, err := loadPrivateKey(pub.Params)
	if err != nil {
		log.Fatalf("decrypt: %v", err)
	}
	hasher, err := hasherByName(*hashName)
	if err != nil {
		log.Fatalf("decrypt: %v", err)
	}
	ct, err := base64.StdEncoding.DecodeString(*ctB64)
	if err != nil {
		log.Fatalf("decrypt: invalid base64: %v", err)
	}

	m, err := ntru.Decrypt(priv, pub, ct, hasher)
	if err != nil {
		log.Fatalf("decrypt: %v", err)
	}
	fmt.Println(string(m))
}

func loadPublicKey() (*ntru.PublicKey, error) {
	pk, err := keys.LoadPublic()
	if err != nil {
		return nil, err
	}
	par, err := presetByName(pk.ParamsName)
	if err != nil {
		return nil, err
	}
	hBytes, err := pk.HBytes()
	if err != nil {
		return nil, err
	}
	h, err := ntru.FromBinary(hBytes, par.N, par.Q)
	if err != nil {
		return nil, err
	}
	return &ntru.PublicKey{Params: par, H: h}, nil
}

func loadPrivateKey(par ntru.Params) (*ntru.PrivateKey, error) {
	sk, err := keys.LoadPrivate()
	if err != nil {
		return nil, err
	}
	fBytes, err := sk.FBytes()
	if err != nil {
		return nil, err
	}
	fpBytes, err := sk.FpBytes()
	if err != nil {
		return nil, err
	}
	f, err := ntru.DecodePrivateF(fBytes, par)
	if err != nil {
		return nil, err
	}
	fp, err := ntru.FromBinary3Tight(fpBytes, par.N)
	if err != nil {
		return nil, err
	}
	return &ntru.PrivateKey{
		Params: par,
		F:      f,
		Fp:     fp,
	}, nil
}
