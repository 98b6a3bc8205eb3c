package tape

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/fieldcarve/fieldcarve/expr"
	"github.com/klauspost/compress/s2"
)

// archiveMagic tags the uncompressed wire format; archiveVersion allows
// the format to evolve without silently misreading an old archive.
const (
	archiveMagic   uint32 = 0x46435401 // "FCT" + version nibble
	archiveVersion uint8  = 1
)

// Archive is a compressed, self-contained serialization of a Tape,
// suitable for caching across scheduler invocations (e.g. keyed by
// group set, so an octree rebuild at an unchanged depth can skip
// Build+Simplify entirely).
type Archive struct {
	data []byte
}

// Bytes returns the archive's compressed wire bytes.
func (a Archive) Bytes() []byte { return a.data }

// ArchiveFromBytes wraps raw bytes (as previously produced by
// Archive.Bytes) back into an Archive for Decode.
func ArchiveFromBytes(b []byte) Archive {
	return Archive{data: b}
}

// Encode serializes t and compresses it with s2, a block-compressed
// Snappy derivative.
func Encode(t *Tape) (Archive, error) {
	var buf bytes.Buffer
	hdr := make([]byte, 4)
	binary.BigEndian.PutUint32(hdr, archiveMagic)
	buf.Write(hdr)
	buf.WriteByte(archiveVersion)

	var scratch [8]byte
	binary.BigEndian.PutUint32(scratch[:4], uint32(len(t.Instrs)))
	buf.Write(scratch[:4])
	binary.BigEndian.PutUint32(scratch[:4], uint32(t.Out))
	buf.Write(scratch[:4])

	hasSource := len(t.source) == len(t.Instrs)
	if hasSource {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}

	for _, instr := range t.Instrs {
		buf.WriteByte(byte(instr.Op))
		binary.BigEndian.PutUint32(scratch[:4], uint32(instr.X))
		buf.Write(scratch[:4])
		binary.BigEndian.PutUint32(scratch[:4], uint32(instr.Y))
		buf.Write(scratch[:4])
		binary.BigEndian.PutUint64(scratch[:8], math.Float64bits(instr.Imm))
		buf.Write(scratch[:8])
		buf.WriteByte(byte(instr.VarSlot))
		binary.BigEndian.PutUint32(scratch[:4], uint32(instr.Choice))
		buf.Write(scratch[:4])
	}

	if hasSource {
		for _, n := range t.source {
			binary.BigEndian.PutUint32(scratch[:4], uint32(n))
			buf.Write(scratch[:4])
		}
	}

	return Archive{data: s2.Encode(nil, buf.Bytes())}, nil
}

// Decode reverses Encode.
func Decode(a Archive) (*Tape, error) {
	raw, err := s2.Decode(nil, a.data)
	if err != nil {
		return nil, &StructuralError{Op: "decode", Err: ErrCorruptArchive}
	}
	r := bytes.NewReader(raw)

	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil || binary.BigEndian.Uint32(hdr[:]) != archiveMagic {
		return nil, ErrCorruptArchive
	}
	var version [1]byte
	if _, err := io.ReadFull(r, version[:]); err != nil || version[0] != archiveVersion {
		return nil, ErrCorruptArchive
	}

	var u32 [4]byte
	if _, err := io.ReadFull(r, u32[:]); err != nil {
		return nil, ErrCorruptArchive
	}
	numInstrs := binary.BigEndian.Uint32(u32[:])

	if _, err := io.ReadFull(r, u32[:]); err != nil {
		return nil, ErrCorruptArchive
	}
	out := Reg(binary.BigEndian.Uint32(u32[:]))

	var hasSourceByte [1]byte
	if _, err := io.ReadFull(r, hasSourceByte[:]); err != nil {
		return nil, ErrCorruptArchive
	}
	hasSource := hasSourceByte[0] == 1

	instrs := make([]Instr, numInstrs)
	var u64 [8]byte
	var u8 [1]byte
	for i := range instrs {
		if _, err := io.ReadFull(r, u8[:]); err != nil {
			return nil, ErrCorruptArchive
		}
		instrs[i].Op = expr.Op(u8[0])

		if _, err := io.ReadFull(r, u32[:]); err != nil {
			return nil, ErrCorruptArchive
		}
		instrs[i].X = Reg(binary.BigEndian.Uint32(u32[:]))

		if _, err := io.ReadFull(r, u32[:]); err != nil {
			return nil, ErrCorruptArchive
		}
		instrs[i].Y = Reg(binary.BigEndian.Uint32(u32[:]))

		if _, err := io.ReadFull(r, u64[:]); err != nil {
			return nil, ErrCorruptArchive
		}
		instrs[i].Imm = math.Float64frombits(binary.BigEndian.Uint64(u64[:]))

		if _, err := io.ReadFull(r, u8[:]); err != nil {
			return nil, ErrCorruptArchive
		}
		instrs[i].VarSlot = expr.Var(u8[0])

		if _, err := io.ReadFull(r, u32[:]); err != nil {
			return nil, ErrCorruptArchive
		}
		instrs[i].Choice = expr.ChoiceIndex(binary.BigEndian.Uint32(u32[:]))
	}

	var source []expr.NodeIndex
	if hasSource {
		source = make([]expr.NodeIndex, numInstrs)
		for i := range source {
			if _, err := io.ReadFull(r, u32[:]); err != nil {
				return nil, ErrCorruptArchive
			}
			source[i] = expr.NodeIndex(binary.BigEndian.Uint32(u32[:]))
		}
	}

	return &Tape{Instrs: instrs, Out: out, source: source}, nil
}
