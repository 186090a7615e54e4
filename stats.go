package blobtable

type Stats struct {
	Size                    int
	Capacity                int
	Tombstones              int
	LoadFactor              float32
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32
}
