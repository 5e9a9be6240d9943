// Package config holds the host-owned machine configuration that deferred
// actions mutate. The model layer never inspects this type; actions receive
// it as an opaque target and assert it back here.
package config

import "github.com/google/uuid"

type SyncedFolder struct {
	Source      string   `yaml:"source"`
	Destination string   `yaml:"destination"`
	Mode        string   `yaml:"mode"`
	Exclude     []string `yaml:"exclude,omitempty"`
}

type Network struct {
	Kind        string `yaml:"kind"`
	Address     string `yaml:"address,omitempty"`
	Netmask     string `yaml:"netmask,omitempty"`
	Bridge      string `yaml:"bridge,omitempty"`
	GuestPort   int    `yaml:"guest_port,omitempty"`
	HostPort    int    `yaml:"host_port,omitempty"`
	AutoCorrect bool   `yaml:"auto_correct,omitempty"`
}

type Provisioner struct {
	Kind       string            `yaml:"kind"`
	Command    string            `yaml:"command,omitempty"`
	Script     string            `yaml:"script,omitempty"`
	Env        map[string]string `yaml:"env,omitempty"`
	EnvFile    string            `yaml:"env_file,omitempty"`
	Privileged bool              `yaml:"privileged,omitempty"`
}

type Provider struct {
	Name           string            `yaml:"name"`
	Memory         int               `yaml:"memory,omitempty"`
	Cpus           int               `yaml:"cpus,omitempty"`
	DiskSize       uint64            `yaml:"disk_size,omitempty"`
	Gui            bool              `yaml:"gui,omitempty"`
	Customizations map[string]string `yaml:"customizations,omitempty"`
}

// Machine is the fully resolved configuration of a single machine. It is
// built up exclusively by deferred actions derived from populated models.
type Machine struct {
	ID string `yaml:"id"`

	Box          string `yaml:"box,omitempty"`
	BoxURL       string `yaml:"box_url,omitempty"`
	BoxVersion   string `yaml:"box_version,omitempty"`
	Hostname     string `yaml:"hostname,omitempty"`
	Communicator string `yaml:"communicator,omitempty"`

	SyncedFolders []SyncedFolder `yaml:"synced_folders,omitempty"`
	Networks      []Network      `yaml:"networks,omitempty"`
	Provisioners  []Provisioner  `yaml:"provisioners,omitempty"`
	Providers     []Provider     `yaml:"providers,omitempty"`
}

func New() *Machine {
	return &Machine{
		ID: uuid.NewString(),
	}
}
