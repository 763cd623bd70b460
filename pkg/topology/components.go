// Package topology derives dataset-wide statistics from the reference
// graph of a decoded export: how many wiring islands the plant splits
// into, which remote references point at nothing, and which devices
// report no neighbors at all.
package topology

import (
	"container/list"
	"sort"

	"github.com/SemonoffArt/proneta2obsidian/pkg/proneta"
)

// Island is one connected component of the device reference graph.
type Island struct {
	Stations []string
	Size     int
}

// Summary rolls an index up into the numbers a run report carries.
type Summary struct {
	Islands       int
	LargestIsland int
	DanglingRefs  int
	Linkless      int
}

// Index holds the undirected reference graph between known devices,
// keyed by raw station key.
type Index struct {
	keys      []string
	neighbors map[string]map[string]struct{}
	dangling  map[string]struct{}
	linkless  int
}

// BuildIndex indexes the complete device list and the references
// between known devices. A remote station that matches no device key
// is tracked as dangling instead of becoming an edge.
func BuildIndex(devices []proneta.Device) *Index {
	idx := &Index{
		keys:      make([]string, 0, len(devices)),
		neighbors: make(map[string]map[string]struct{}, len(devices)),
		dangling:  make(map[string]struct{}),
	}

	for i := range devices {
		key := devices[i].Key()
		if _, ok := idx.neighbors[key]; ok {
			continue
		}
		idx.keys = append(idx.keys, key)
		idx.neighbors[key] = make(map[string]struct{})
	}

	for i := range devices {
		d := &devices[i]
		key := d.Key()
		connected := 0
		for _, p := range d.Ports() {
			if !p.Connected() {
				continue
			}
			connected++
			remote := p.RemoteNameOfStation
			if _, known := idx.neighbors[remote]; !known {
				idx.dangling[remote] = struct{}{}
				continue
			}
			if remote == key {
				continue
			}
			idx.neighbors[key][remote] = struct{}{}
			idx.neighbors[remote][key] = struct{}{}
		}
		if connected == 0 {
			idx.linkless++
		}
	}
	return idx
}

// Has reports whether key belongs to a known device.
func (x *Index) Has(key string) bool {
	_, ok := x.neighbors[key]
	return ok
}

// Islands returns the connected components of the reference graph,
// largest first. A device with no usable references forms an island of
// one.
func (x *Index) Islands() []Island {
	visited := make(map[string]bool, len(x.keys))
	islands := make([]Island, 0)

	// BFS from every unvisited device, in document order.
	for _, start := range x.keys {
		if visited[start] {
			continue
		}
		var island Island

		queue := list.New()
		queue.PushBack(start)
		visited[start] = true

		for queue.Len() > 0 {
			key, ok := queue.Remove(queue.Front()).(string)
			if !ok {
				continue
			}
			island.Stations = append(island.Stations, key)

			for neighbor := range x.neighbors[key] {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue.PushBack(neighbor)
				}
			}
		}

		island.Size = len(island.Stations)
		islands = append(islands, island)
	}

	sort.SliceStable(islands, func(i, j int) bool {
		return islands[i].Size > islands[j].Size
	})
	return islands
}

// Summarize computes the report counters for the index.
func (x *Index) Summarize() Summary {
	islands := x.Islands()
	s := Summary{
		Islands:      len(islands),
		DanglingRefs: len(x.dangling),
		Linkless:     x.linkless,
	}
	if len(islands) > 0 {
		s.LargestIsland = islands[0].Size
	}
	return s
}
