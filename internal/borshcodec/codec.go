// Package borshcodec adapts borsh-encoded account rows to collections value
// codecs. Every row is prefixed with an 8-byte account discriminator.
package borshcodec

import (
	"bytes"
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
	bin "github.com/gagliardetto/binary"
)

type valueCodec[T any] struct {
	name          string
	discriminator []byte
}

// New returns a value codec for rows of type T stored under the account
// discriminator of name. T must be borsh encodable either through struct
// reflection or by implementing bin.EncoderDecoder on its pointer.
func New[T any](name string) collcodec.ValueCodec[T] {
	return valueCodec[T]{name: name, discriminator: bin.SighashAccount(name)}
}

// Discriminator returns the 8-byte prefix rows of name are stored with.
func Discriminator(name string) []byte {
	return bin.SighashAccount(name)
}

func (c valueCodec[T]) Encode(value T) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(c.discriminator)
	if err := bin.NewBorshEncoder(buf).Encode(&value); err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.name, err)
	}
	return buf.Bytes(), nil
}

func (c valueCodec[T]) Decode(b []byte) (T, error) {
	var out T
	if len(b) < bin.ACCOUNT_DISCRIMINATOR_SIZE {
		return out, fmt.Errorf("decode %s: short row (%d bytes)", c.name, len(b))
	}
	if !bytes.Equal(b[:bin.ACCOUNT_DISCRIMINATOR_SIZE], c.discriminator) {
		return out, fmt.Errorf("decode %s: discriminator mismatch %x", c.name, b[:bin.ACCOUNT_DISCRIMINATOR_SIZE])
	}
	dec := bin.NewBorshDecoder(b[bin.ACCOUNT_DISCRIMINATOR_SIZE:])
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("decode %s: %w", c.name, err)
	}
	if dec.HasRemaining() {
		return out, fmt.Errorf("decode %s: %d trailing bytes", c.name, dec.Remaining())
	}
	return out, nil
}

func (c valueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c valueCodec[T]) DecodeJSON(b []byte) (T, error) {
	var out T
	err := json.Unmarshal(b, &out)
	return out, err
}

func (c valueCodec[T]) Stringify(value T) string {
	return fmt.Sprintf("%+v", value)
}

func (c valueCodec[T]) ValueType() string {
	return "borsh/" + c.name
}
