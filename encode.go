package transact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// This file contains the JSON format of a Store.
//
// A store is persisted as a single JSON document:
//
//	{
//	  "persons": [ {"name": ..., "phone": ..., "email": ..., "address": ..., "tags": [...]}, ...],
//	  "transactions": [ {"id": ..., "type": ..., "description": ..., "amount": ..., "date": ..., "person": {...}}, ...]
//	}
//
// Entries are written in insertion order, and object fields in a stable order,
// so that the file is human-readable and diff friendly.

// jstore is the document read from the stream. Elements are kept raw so that
// each one can be reported individually. Both lists are mandatory.
type jstore struct {
	Persons      *[]json.RawMessage `json:"persons"`
	Transactions *[]json.RawMessage `json:"transactions"`
}

// EncodeStore writes the JSON document of s to w.
func EncodeStore(w io.Writer, s *Store) error {
	doc := new(jsonObjectWriter).
		Append("persons", s.persons.Slice()).
		Append("transactions", s.transactions.Slice())
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode store: %w", err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, data, "", "  "); err != nil {
		return fmt.Errorf("cannot encode store: %w", err)
	}
	indented.WriteByte('\n')
	if _, err := w.Write(indented.Bytes()); err != nil {
		return fmt.Errorf("cannot write store: %w", err)
	}
	return nil
}

// DecodeStore reads a JSON document from r and returns the Store it describes.
//
// Decoding is all or nothing: any malformed document, invalid field or
// duplicate entry fails with a *DataLoadingError and no store.
func DecodeStore(r io.Reader) (*Store, error) {
	var doc jstore
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, &DataLoadingError{Err: fmt.Errorf("not a correct json document: %w", err)}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &DataLoadingError{Err: errors.New("not a correct json document: unexpected data after the document")}
	}
	if err := missingFields(
		field{"persons", doc.Persons != nil},
		field{"transactions", doc.Transactions != nil},
	); err != nil {
		return nil, &DataLoadingError{Err: err}
	}

	s := NewStore()
	for i, raw := range *doc.Persons {
		var p Person
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, &DataLoadingError{Err: fmt.Errorf("persons[%d]: %w", i, err)}
		}
		if err := s.AddPerson(p); err != nil {
			return nil, &DataLoadingError{Err: fmt.Errorf("persons[%d]: %w", i, err)}
		}
	}
	for i, raw := range *doc.Transactions {
		var t Transaction
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, &DataLoadingError{Err: fmt.Errorf("transactions[%d]: %w", i, err)}
		}
		if err := s.AddTransaction(t); err != nil {
			return nil, &DataLoadingError{Err: fmt.Errorf("transactions[%d]: %w", i, err)}
		}
	}
	return s, nil
}
