package render

// BatchCapacity is the fixed number of vertices a Batch can hold. The
// workload is static geometry built once at startup, so running out of room
// is a caller bug, not a runtime condition.
const BatchCapacity = 8 * 1024

type Vec2 struct {
	X, Y float32
}

type Color struct {
	R, G, B, A float32
}

// Vertex is one entry of the batch: NDC position, texture coordinate and
// RGBA color. Vertices are immutable once pushed.
type Vertex struct {
	Pos   Vec2
	UV    Vec2
	Color Color
}

// Batch accumulates vertices on the CPU before they are flushed to the GPU.
// It is append-only; the only way to shrink it is a process restart.
type Batch struct {
	vertices []Vertex
}

func NewBatch() *Batch {
	return &Batch{vertices: make([]Vertex, 0, BatchCapacity)}
}

func (b *Batch) Len() int {
	return len(b.vertices)
}

// Vertices returns the live portion of the batch in push order.
func (b *Batch) Vertices() []Vertex {
	return b.vertices
}

// PushVertex appends one vertex. Exceeding BatchCapacity panics.
func (b *Batch) PushVertex(pos, uv Vec2, color Color) {
	if len(b.vertices) >= BatchCapacity {
		panic("render: batch capacity exceeded")
	}
	b.vertices = append(b.vertices, Vertex{Pos: pos, UV: uv, Color: color})
}

// PushQuad decomposes the axis-aligned rectangle spanned by p1 and p2 into
// two triangles (a,b,c) and (b,c,d), UV mapped 0..1 per axis.
func (b *Batch) PushQuad(p1, p2 Vec2, color Color) {
	a := p1
	bb := Vec2{X: p2.X, Y: p1.Y}
	c := Vec2{X: p1.X, Y: p2.Y}
	d := p2

	b.PushVertex(a, Vec2{X: 0, Y: 0}, color)
	b.PushVertex(bb, Vec2{X: 1, Y: 0}, color)
	b.PushVertex(c, Vec2{X: 0, Y: 1}, color)

	b.PushVertex(bb, Vec2{X: 1, Y: 0}, color)
	b.PushVertex(c, Vec2{X: 0, Y: 1}, color)
	b.PushVertex(d, Vec2{X: 1, Y: 1}, color)
}

// PushCheckerBoard fills the full NDC square with a gridSize x gridSize
// board of alternating red and black quads. Debug geometry for eyeballing
// UV orientation and vertex colors.
func (b *Batch) PushCheckerBoard(gridSize int) {
	cellWidth := 2.0 / float32(gridSize)
	cellHeight := 2.0 / float32(gridSize)

	red := Color{R: 1, A: 1}
	black := Color{A: 1}

	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			color := red
			if (x+y)%2 != 0 {
				color = black
			}
			b.PushQuad(
				Vec2{X: -1 + float32(x)*cellWidth, Y: -1 + float32(y)*cellHeight},
				Vec2{X: -1 + float32(x+1)*cellWidth, Y: -1 + float32(y+1)*cellHeight},
				color,
			)
		}
	}
}
