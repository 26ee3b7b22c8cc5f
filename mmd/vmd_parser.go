package mmd

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// FrameRate is the fixed playback rate of VMD motions.
const FrameRate = 30

const (
	vmdFormatV1 = "Vocaloid Motion Data file"
	vmdFormatV2 = "Vocaloid Motion Data 0002"

	// samples beyond this are treated as a corrupt header.
	maxSamples = 1 << 24
)

var ErrFormat = errors.New("unsupported vmd format")

// VMDParser is parser for .vmd animation.
type VMDParser struct {
	r   io.Reader
	err error
}

type Animation struct {
	// ModelName is the model the motion was recorded for.
	ModelName string
	Bone      []*AnimationBoneSample
	Morph     []*AnimationMorphSample
}

type AnimationBoneSample struct {
	Target   string
	Frame    int
	Position Vector3
	Rotation Vector4
	Params   [64]byte
}

type AnimationMorphSample struct {
	Target string
	Frame  int
	Value  float32
}

// FrameCount returns the number of frames needed to hold every bone sample.
func (a *Animation) FrameCount() int {
	n := 0
	for _, s := range a.Bone {
		if s.Frame+1 > n {
			n = s.Frame + 1
		}
	}
	return n
}

// BoneFrames groups bone samples by frame. Samples keep file order within a frame.
func (a *Animation) BoneFrames() map[int][]*AnimationBoneSample {
	r := map[int][]*AnimationBoneSample{}
	for _, s := range a.Bone {
		r[s.Frame] = append(r[s.Frame], s)
	}
	return r
}

// BoneNames returns the keyed bone names in sorted order.
func (a *Animation) BoneNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, s := range a.Bone {
		if !seen[s.Target] {
			seen[s.Target] = true
			names = append(names, s.Target)
		}
	}
	sort.Strings(names)
	return names
}

// NewVMDParser returns new parser.
func NewVMDParser(r io.Reader) *VMDParser {
	return &VMDParser{r: r}
}

// Parse animation data.
func (p *VMDParser) Parse() (*Animation, error) {
	var anim Animation

	switch formatName := p.readString(30); formatName {
	case vmdFormatV1:
		anim.ModelName = p.readString(10)
	case vmdFormatV2:
		anim.ModelName = p.readString(20)
	default:
		if p.err != nil {
			return nil, p.err
		}
		return nil, fmt.Errorf("%w: %q", ErrFormat, formatName)
	}

	frames := p.readCount()
	for i := 0; i < frames && p.err == nil; i++ {
		sample := &AnimationBoneSample{}
		sample.Target = p.readString(15)
		sample.Frame = p.readInt()
		p.read(&sample.Position)
		p.read(&sample.Rotation)
		p.read(&sample.Params)
		anim.Bone = append(anim.Bone, sample)
	}
	if p.err != nil {
		return nil, unexpectedEOF(p.err)
	}

	// Morph section is optional in old files.
	frames = p.readCount()
	if p.err == io.EOF {
		return &anim, nil
	}
	for i := 0; i < frames && p.err == nil; i++ {
		sample := &AnimationMorphSample{}
		sample.Target = p.readString(15)
		sample.Frame = p.readInt()
		p.read(&sample.Value)
		anim.Morph = append(anim.Morph, sample)
	}

	if p.err != nil {
		return nil, unexpectedEOF(p.err)
	}
	return &anim, nil
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// LoadVMD reads a .vmd file.
func LoadVMD(path string) (*Animation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	anim, err := NewVMDParser(f).Parse()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return anim, nil
}

func (p *VMDParser) read(v interface{}) {
	if p.err != nil {
		return
	}
	p.err = binary.Read(p.r, binary.LittleEndian, v)
}

func (p *VMDParser) readInt() int {
	var v uint32
	p.read(&v)
	return int(v)
}

func (p *VMDParser) readCount() int {
	n := p.readInt()
	if n > maxSamples && p.err == nil {
		p.err = fmt.Errorf("%w: %d samples", ErrFormat, n)
	}
	return n
}

func (p *VMDParser) readString(len int) string {
	b := make([]byte, len)
	p.read(b)
	utf8Data, _, _ := transform.Bytes(japanese.ShiftJIS.NewDecoder(), bytes.SplitN(b, []byte{0}, 2)[0])
	return string(utf8Data)
}
