package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/amr3d/amr"
)

// Parameters obtained from the YAML input file
type ConversionParameters struct {
	Title       string `json:"Title"`
	Infile      string `json:"Infile"`
	Mode        string `json:"Mode"`        // extrude or pseudo3d
	NCells      *int   `json:"NCells"`      // Thickness of the extruded axis, nil when not given
	IsPeriodic  []int  `json:"IsPeriodic"`  // Periodicity per axis of the output, 0 or 1
	MaxGridSize []int  `json:"MaxGridSize"` // Largest box extent per axis of the output, 0 means no cap
	Workers     int    `json:"Workers"`
	Verify      bool   `json:"Verify"`
}

func (ip *ConversionParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *ConversionParameters) Validate() error {
	var problems []string
	if ip.NCells != nil && *ip.NCells <= 0 {
		return fmt.Errorf("%w: NCells is %d", amr.ErrInvalidThickness, *ip.NCells)
	}
	if n := len(ip.IsPeriodic); n != 0 && n != 2 && n != 3 {
		problems = append(problems, fmt.Sprintf("IsPeriodic has %d entries, need 2 or 3", n))
	}
	for _, p := range ip.IsPeriodic {
		if p != 0 && p != 1 {
			problems = append(problems, fmt.Sprintf("IsPeriodic entry %d is not 0 or 1", p))
			break
		}
	}
	if n := len(ip.MaxGridSize); n != 0 && n != 3 {
		problems = append(problems, fmt.Sprintf("MaxGridSize has %d entries, need 3", n))
	}
	if ip.Workers < 0 {
		problems = append(problems, fmt.Sprintf("Workers is %d", ip.Workers))
	}
	if len(problems) != 0 {
		return fmt.Errorf("%w: %s", amr.ErrInvalidOption, strings.Join(problems, "; "))
	}
	return nil
}

func (ip *ConversionParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Infile\n", ip.Infile)
	fmt.Printf("[%s]\t\t\t= Mode\n", ip.Mode)
	if ip.NCells != nil {
		fmt.Printf("[%d]\t\t\t\t= NCells\n", *ip.NCells)
	}
	fmt.Printf("%v\t\t\t= IsPeriodic\n", ip.IsPeriodic)
	fmt.Printf("%v\t\t\t= MaxGridSize\n", ip.MaxGridSize)
	fmt.Printf("[%d]\t\t\t\t= Workers\n", ip.Workers)
	fmt.Printf("[%v]\t\t\t= Verify\n", ip.Verify)
}
