package store

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Memory is a byte count of key/value traffic through the store.
type Memory uint64

const (
	KiB Memory = 1 << (10 * (iota + 1))
	MiB
	GiB
)

const (
	KB Memory = 1000
	MB        = KB * 1000
	GB        = MB * 1000
)

func (m Memory) Bytes() uint64 {
	return uint64(m)
}

func (m Memory) KiB() float64 {
	return float64(m) / float64(KiB)
}

func (m Memory) MiB() float64 {
	return float64(m) / float64(MiB)
}

func (m Memory) GiB() float64 {
	return float64(m) / float64(GiB)
}

func (m Memory) KB() float64 {
	return float64(m) / float64(KB)
}

func (m Memory) MB() float64 {
	return float64(m) / float64(MB)
}

func (m Memory) GB() float64 {
	return float64(m) / float64(GB)
}

func (m Memory) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d Bytes", m.Bytes())
}
