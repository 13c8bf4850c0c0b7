package model

// AllocationRecord is one row of GET _cat/allocation?format=json, saved as allocation.json.
// Disk fields are human readable sizes such as "94.2gb"; they are null on the UNASSIGNED row.
type AllocationRecord struct {
	Shards      string  `json:"shards"`
	DiskIndices *string `json:"disk.indices,omitempty"`
	DiskUsed    *string `json:"disk.used"`
	DiskAvail   *string `json:"disk.avail"`
	DiskTotal   *string `json:"disk.total"`
	DiskPercent *string `json:"disk.percent"`
	Host        *string `json:"host"`
	IP          *string `json:"ip"`
	Node        string  `json:"node"`
}

func (a AllocationRecord) HasDiskReport() bool {
	return a.DiskAvail != nil
}
