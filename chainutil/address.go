/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainutil

import "fmt"

// Address is anything that can be turned into a standard payment script.
// The block assembler only ever needs to turn a configured mining address
// into a PkScript; full base58/bech32 codec support lives outside the
// assembler's scope.
type Address interface {
	ScriptAddress() []byte
	String() string
	IsWitness() bool
	IsScriptHash() bool
}

// AddressPubKeyHash is a standard pay-to-pubkey-hash address.
type AddressPubKeyHash struct {
	hash [20]byte
}

// NewAddressPubKeyHash returns a new AddressPubKeyHash wrapping the given
// 20-byte pubkey hash.
func NewAddressPubKeyHash(hash []byte) (*AddressPubKeyHash, error) {
	if len(hash) != 20 {
		return nil, fmt.Errorf("pubkey hash must be 20 bytes, got %d", len(hash))
	}
	a := &AddressPubKeyHash{}
	copy(a.hash[:], hash)
	return a, nil
}

func (a *AddressPubKeyHash) ScriptAddress() []byte { return a.hash[:] }
func (a *AddressPubKeyHash) IsWitness() bool       { return false }
func (a *AddressPubKeyHash) IsScriptHash() bool    { return false }
func (a *AddressPubKeyHash) String() string        { return fmt.Sprintf("%x", a.hash[:]) }

// AddressWitnessPubKeyHash is a standard pay-to-witness-pubkey-hash address.
type AddressWitnessPubKeyHash struct {
	hash [20]byte
}

// NewAddressWitnessPubKeyHash returns a new AddressWitnessPubKeyHash
// wrapping the given 20-byte pubkey hash.
func NewAddressWitnessPubKeyHash(hash []byte) (*AddressWitnessPubKeyHash, error) {
	if len(hash) != 20 {
		return nil, fmt.Errorf("pubkey hash must be 20 bytes, got %d", len(hash))
	}
	a := &AddressWitnessPubKeyHash{}
	copy(a.hash[:], hash)
	return a, nil
}

func (a *AddressWitnessPubKeyHash) ScriptAddress() []byte { return a.hash[:] }
func (a *AddressWitnessPubKeyHash) IsWitness() bool       { return true }
func (a *AddressWitnessPubKeyHash) IsScriptHash() bool    { return false }
func (a *AddressWitnessPubKeyHash) String() string        { return fmt.Sprintf("%x", a.hash[:]) }

// AddressScriptHash is a standard pay-to-script-hash address.
type AddressScriptHash struct {
	hash [20]byte
}

// NewAddressScriptHash returns a new AddressScriptHash wrapping the given
// 20-byte script hash.
func NewAddressScriptHash(hash []byte) (*AddressScriptHash, error) {
	if len(hash) != 20 {
		return nil, fmt.Errorf("script hash must be 20 bytes, got %d", len(hash))
	}
	a := &AddressScriptHash{}
	copy(a.hash[:], hash)
	return a, nil
}

func (a *AddressScriptHash) ScriptAddress() []byte { return a.hash[:] }
func (a *AddressScriptHash) IsWitness() bool        { return false }
func (a *AddressScriptHash) IsScriptHash() bool     { return true }
func (a *AddressScriptHash) String() string         { return fmt.Sprintf("%x", a.hash[:]) }
