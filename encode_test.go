package switchboard_test

import (
	"bytes"
	"encoding/binary"
	"reflect"
	"testing"

	sb "github.com/mcbridejc/switchboard"
)

// reader consumes the wire format the way the device firmware does, for
// checking the encoder's output. It is test-local: the library side of the
// protocol is encode-only.
type reader struct {
	t   *testing.T
	buf []byte
	pos int
}

func (r *reader) need(n int) {
	r.t.Helper()
	if r.pos+n > len(r.buf) {
		r.t.Fatalf("short buffer: need %d bytes at offset %d of %d", n, r.pos, len(r.buf))
	}
}

func (r *reader) u16() int {
	r.t.Helper()
	r.need(2)
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return int(v)
}

func (r *reader) u32() int {
	r.t.Helper()
	r.need(4)
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return int(v)
}

func (r *reader) i32() int {
	r.t.Helper()
	return int(int32(uint32(r.u32())))
}

func (r *reader) str(n int) string {
	r.t.Helper()
	r.need(n)
	s := string(r.buf[r.pos : r.pos+n])
	r.pos += n
	return s
}

func (r *reader) pairs(n int) [][2]int {
	r.t.Helper()
	out := make([][2]int, n)
	for i := range out {
		out[i] = [2]int{r.u16(), r.u16()}
	}
	return out
}

type wireInput struct {
	id      int
	name    string
	targets [][2]int
}

func (r *reader) inputs() []wireInput {
	r.t.Helper()
	n := r.u16()
	out := make([]wireInput, n)
	for i := range out {
		out[i].id = r.u16()
		out[i].name = r.str(r.u16())
		out[i].targets = r.pairs(r.u16())
	}
	return out
}

type wireCell struct {
	code    int
	params  []int
	outputs [][][2]int
}

func (r *reader) cells() []wireCell {
	r.t.Helper()
	n := r.u32()
	out := make([]wireCell, n)
	for i := range out {
		out[i].code = r.u16()
		np := r.u16()
		out[i].params = make([]int, np)
		for j := range out[i].params {
			out[i].params[j] = r.i32()
		}
		out[i].outputs = make([][][2]int, r.u16())
		for j := range out[i].outputs {
			out[i].outputs[j] = r.pairs(r.u16())
		}
	}
	return out
}

func Test_encode_exactBytes(t *testing.T) {
	// one button into a latch's set input, latch output on slot 0
	g := sb.New(1)
	b := g.NewBool()
	btn := sb.NewButtonPort("b", 2)
	if err := b.Connect("set", btn.Out()); err != nil {
		t.Fatal(err)
	}
	if err := g.SetOutput(0, b.Out()); err != nil {
		t.Fatal(err)
	}
	g.Coalesce()

	buf, err := sb.Encode(g)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x01, 0x00, // buttonPortCount
		0x02, 0x00, // pin
		0x01, 0x00, 'b', // name
		0x01, 0x00, // targetCount
		0x00, 0x00, 0x00, 0x00, // -> cell 0 port 0
		0x00, 0x00, // softwarePortCount
		0x01, 0x00, 0x00, 0x00, // cellCount
		0x03, 0x00, // typeCode bool
		0x00, 0x00, // paramCount
		0x01, 0x00, // outputPortCount
		0x01, 0x00, // targetCount
		0xFF, 0xFF, 0x00, 0x00, // -> out slot 0
	}
	if !bytes.Equal(buf, want) {
		t.Errorf("encoded bytes\n got %#v\nwant %#v", buf, want)
	}
}

func Test_encode_dimmerDemo(t *testing.T) {
	g, err := sb.DimmerDemo()
	if err != nil {
		t.Fatal(err)
	}
	g.Coalesce()
	buf, err := sb.Encode(g)
	if err != nil {
		t.Fatal(err)
	}

	r := &reader{t: t, buf: buf}
	buttons := r.inputs()
	software := r.inputs()
	cells := r.cells()
	if r.pos != len(buf) {
		t.Errorf("%d trailing bytes after cell table", len(buf)-r.pos)
	}

	// cell index space, per DFS order: mux=0, levels=1, demux=2, bool=3
	// for light 1, +4 for light 2.
	wantButtons := []wireInput{
		{0, "light1_on", [][2]int{{2, 0}}},
		{1, "light1_off", [][2]int{{3, 1}}},
		{2, "light2_on", [][2]int{{6, 0}}},
		{3, "light2_off", [][2]int{{7, 1}}},
	}
	if !reflect.DeepEqual(buttons, wantButtons) {
		t.Errorf("button section = %+v\nwant %+v", buttons, wantButtons)
	}

	wantSoftware := []wireInput{
		{10, "light1_set", [][2]int{{0xFFFF, 3}}},
		{11, "light2_set", [][2]int{{0xFFFF, 4}}},
	}
	if !reflect.DeepEqual(software, wantSoftware) {
		t.Errorf("software section = %+v\nwant %+v", software, wantSoftware)
	}

	wantCells := []wireCell{
		{1, []int{2}, [][][2]int{{{0xFFFF, 3}}}},           // mux_1
		{0, []int{1000, 3000, 9000}, [][][2]int{{{0, 1}}}}, // levels_1
		{2, []int{}, [][][2]int{{{3, 0}}, {{1, 0}}}},       // demux_1
		{3, []int{}, [][][2]int{{{2, 1}, {0, 2}}}},         // bool_1
		{1, []int{2}, [][][2]int{{{0xFFFF, 4}}}},           // mux_2
		{0, []int{1000, 3000, 9000}, [][][2]int{{{4, 1}}}}, // levels_2
		{2, []int{}, [][][2]int{{{7, 0}}, {{5, 0}}}},       // demux_2
		{3, []int{}, [][][2]int{{{6, 1}, {4, 2}}}},         // bool_2
	}
	if len(cells) != len(wantCells) {
		t.Fatalf("cell table has %d cells, want %d", len(cells), len(wantCells))
	}
	for i := range wantCells {
		if !reflect.DeepEqual(cells[i], wantCells[i]) {
			t.Errorf("cell %d = %+v\nwant %+v", i, cells[i], wantCells[i])
		}
	}
}

func Test_encode_reproducible(t *testing.T) {
	g, err := sb.DimmerDemo()
	if err != nil {
		t.Fatal(err)
	}
	g.Coalesce()
	first, err := sb.Encode(g)
	if err != nil {
		t.Fatal(err)
	}

	// coalescing again and re-encoding must produce identical bytes
	g.Coalesce()
	second, err := sb.Encode(g)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("re-encoding the same graph produced different bytes")
	}

	h, err := sb.DimmerDemo()
	if err != nil {
		t.Fatal(err)
	}
	h.Coalesce()
	third, err := sb.Encode(h)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, third) {
		t.Error("two builds of the same system encoded differently")
	}
}
