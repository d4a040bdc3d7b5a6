package losange

// Topology is the host-chosen rule for grouping vertex indices into
// triangles.
type Topology int

const (
	TriangleList Topology = iota
	TriangleStrip
	TriangleFan
)

func (topology Topology) String() string {
	switch topology {
	case TriangleList:
		return "list"
	case TriangleStrip:
		return "strip"
	case TriangleFan:
		return "fan"
	}

	return "unknown"
}

// ParseTopology resolves a command line topology name.
func ParseTopology(name string) (Topology, error) {
	switch name {
	case "list":
		return TriangleList, nil
	case "strip":
		return TriangleStrip, nil
	case "fan":
		return TriangleFan, nil
	}

	return 0, ErrUnknownTopology
}

// Assemble groups the index stream [0, count) into triangles. Strips flip
// the winding of every odd triangle so all triangles keep a consistent
// orientation.
func (topology Topology) Assemble(count int) (triangles [][3]uint32) {
	switch topology {
	case TriangleList:
		for index := 0; index+2 < count; index += 3 {
			triangles = append(triangles, [3]uint32{uint32(index), uint32(index + 1), uint32(index + 2)})
		}

	case TriangleStrip:
		for index := 0; index+2 < count; index++ {
			if index%2 == 0 {
				triangles = append(triangles, [3]uint32{uint32(index), uint32(index + 1), uint32(index + 2)})
			} else {
				triangles = append(triangles, [3]uint32{uint32(index + 1), uint32(index), uint32(index + 2)})
			}
		}

	case TriangleFan:
		for index := 1; index+1 < count; index++ {
			triangles = append(triangles, [3]uint32{0, uint32(index), uint32(index + 1)})
		}
	}

	return
}
