package simulator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileConfig is the optional HCL run configuration for the simulate command.
//
//	simulation {
//	  strategy         = "entropy"
//	  games            = 500
//	  workers          = 8
//	  seed             = 42
//	  progress_seconds = 5
//	}
//
//	words {
//	  lexicon = "data/lexicon.txt"
//	  answers = "data/answers.txt"
//	}
//
// Fields set in the file take precedence over command-line flags.
type FileConfig struct {
	Simulation *SimulationBlock `hcl:"simulation,block"`
	Words      *WordsBlock      `hcl:"words,block"`
}

// SimulationBlock configures the run itself.
type SimulationBlock struct {
	Strategy        string `hcl:"strategy,optional"`
	Games           int    `hcl:"games,optional"`
	Workers         int    `hcl:"workers,optional"`
	Seed            int64  `hcl:"seed,optional"`
	ProgressSeconds int    `hcl:"progress_seconds,optional"`
}

// WordsBlock points at the word lists to load instead of the embedded
// defaults.
type WordsBlock struct {
	Lexicon string `hcl:"lexicon,optional"`
	Answers string `hcl:"answers,optional"`
}

// LoadFileConfig parses an HCL run configuration. A missing file is not an
// error; it yields an empty config so flag values stand.
func LoadFileConfig(filename string) (*FileConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return &FileConfig{}, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config file: %s", diags.Error())
	}

	var config FileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decoding config file: %s", diags.Error())
	}
	return &config, nil
}
