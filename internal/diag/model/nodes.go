package model

// NodesDocument is the response of GET _nodes, saved as nodes.json.
type NodesDocument struct {
	ClusterName string              `json:"cluster_name"`
	Nodes       map[string]NodeInfo `json:"nodes"`
}

type NodeInfo struct {
	Name             string   `json:"name"`
	Host             string   `json:"host,omitempty"`
	IP               string   `json:"ip,omitempty"`
	TransportAddress string   `json:"transport_address,omitempty"`
	Roles            []string `json:"roles,omitempty"`
}
