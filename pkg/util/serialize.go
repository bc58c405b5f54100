// Copyright 2024-2025 the colfold authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unsafe"
)

type Serialize interface {
	WriteData(buffer []byte, len int) error
	Close() error
}

type Deserialize interface {
	ReadData(buffer []byte, len int) error
	Close() error
}

func Write[T any](value T, serial Serialize) error {
	cnt := int(unsafe.Sizeof(value))
	buf := PointerToSlice[byte](unsafe.Pointer(&value), cnt)
	return serial.WriteData(buf, cnt)
}

func Read[T any](value *T, deserial Deserialize) error {
	cnt := int(unsafe.Sizeof(*value))
	buf := PointerToSlice[byte](unsafe.Pointer(value), cnt)
	return deserial.ReadData(buf, cnt)
}

func WriteString(s string, serial Serialize) error {
	err := Write[uint32](uint32(len(s)), serial)
	if err != nil {
		return err
	}
	if len(s) > 0 {
		return serial.WriteData(UnsafeStringToBytes(s), len(s))
	}
	return nil
}

func ReadString(deserial Deserialize) (string, error) {
	var l uint32
	err := Read[uint32](&l, deserial)
	if err != nil {
		return "", err
	}
	if l == 0 {
		return "", nil
	}
	buf := make([]byte, l)
	err = deserial.ReadData(buf, int(l))
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// WriteVarUint writes an unsigned integer in 7 bit groups, low group
// first. The high bit of every byte except the last is set.
func WriteVarUint(value uint64, serial Serialize) error {
	var buf [10]byte
	cnt := 0
	for {
		b := byte(value & 0x7F)
		value >>= 7
		if value != 0 {
			b |= 0x80
		}
		buf[cnt] = b
		cnt++
		if value == 0 {
			break
		}
	}
	return serial.WriteData(buf[:cnt], cnt)
}

func ReadVarUint(deserial Deserialize) (uint64, error) {
	ret := uint64(0)
	shift := uint(0)
	var one [1]byte
	for {
		err := deserial.ReadData(one[:], 1)
		if err != nil {
			return 0, err
		}
		if shift >= 64 {
			return 0, fmt.Errorf("varuint overflows uint64")
		}
		ret |= uint64(one[0]&0x7F) << shift
		if one[0]&0x80 == 0 {
			break
		}
		shift += 7
	}
	return ret, nil
}

func WriteOptional(
	noNil func() bool,
	doSerial func(serial Serialize) error,
	serial Serialize) error {
	has := noNil()
	err := Write[bool](has, serial)
	if err != nil {
		return err
	}
	if has {
		return doSerial(serial)
	}
	return err
}

func ReadOptional(
	doDeserial func(deserial Deserialize) error,
	deserial Deserialize) error {
	opt := false
	err := Read[bool](&opt, deserial)
	if err != nil {
		return err
	}
	if opt {
		return doDeserial(deserial)
	}
	return err
}

var _ Serialize = new(BufferSerialize)
var _ Deserialize = new(BufferSerialize)

// BufferSerialize keeps the byte stream in memory. It backs the
// transport of partial aggregation states between shards.
type BufferSerialize struct {
	data *bytes.Buffer
}

func NewBufferSerialize(buf *bytes.Buffer) *BufferSerialize {
	return &BufferSerialize{data: buf}
}

func (serial *BufferSerialize) WriteData(buffer []byte, len int) error {
	serial.data.Write(buffer[:len])
	return nil
}

func (serial *BufferSerialize) ReadData(buffer []byte, len int) error {
	_, err := io.ReadFull(serial.data, buffer[:len])
	return err
}

func (serial *BufferSerialize) Bytes() []byte {
	return serial.data.Bytes()
}

func (serial *BufferSerialize) Close() error {
	return nil
}

var _ Serialize = new(FileSerialize)

type FileSerialize struct {
	file *os.File
}

func NewFileSerialize(name string) (*FileSerialize, error) {
	var err error
	ret := &FileSerialize{}
	ret.file, err = os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_SYNC, 0775)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (serial *FileSerialize) WriteData(buffer []byte, len int) error {
	var wlen int
	var n int
	var err error
	for wlen < len {
		n, err = serial.file.Write(buffer[wlen:len])
		if err != nil {
			return err
		}
		wlen += n
	}
	return nil
}

func (serial *FileSerialize) Close() error {
	_ = serial.file.Sync()
	_ = serial.file.Close()
	return nil
}

var _ Deserialize = new(FileDeserialize)

type FileDeserialize struct {
	file *os.File
}

func NewFileDeserialize(name string) (*FileDeserialize, error) {
	var err error
	ret := &FileDeserialize{}
	ret.file, err = os.OpenFile(name, os.O_RDONLY, 0775)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (deserial *FileDeserialize) ReadData(buffer []byte, len int) error {
	var rlen int
	var n int
	var err error
	for rlen < len {
		n, err = deserial.file.Read(buffer[rlen:len])
		if err != nil {
			return err
		}
		rlen += n
	}
	return nil
}

func (deserial *FileDeserialize) Close() error {
	_ = deserial.file.Close()
	return nil
}
