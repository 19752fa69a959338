package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// Small demo dataset: four nurses over a week of day and night shifts.
// N3 holds the only ICU certification, so the Wednesday ICU shift can
// only be covered by them.
var sampleFiles = map[string]string{
	"nurses.csv": `nurse_id,max_hours_per_week,skill_level
N1,40,GENERAL
N2,36,GENERAL
N3,40,ICU
N4,24,GENERAL
`,
	"shifts.csv": `shift_id,hours,demand,required_skill
MON_DAY,8,2,GENERAL
TUE_DAY,8,2,GENERAL
WED_ICU,12,1,ICU
THU_DAY,8,2,GENERAL
FRI_DAY,8,2,GENERAL
SAT_NIGHT,12,1,GENERAL
SUN_NIGHT,12,1,GENERAL
`,
	"availability.csv": `nurse_id,shift_id,available
N1,MON_DAY,1
N1,TUE_DAY,1
N1,THU_DAY,1
N1,FRI_DAY,1
N1,SAT_NIGHT,1
N2,MON_DAY,1
N2,TUE_DAY,1
N2,THU_DAY,1
N2,FRI_DAY,1
N2,SUN_NIGHT,1
N3,WED_ICU,1
N3,MON_DAY,1
N3,FRI_DAY,1
N4,TUE_DAY,1
N4,THU_DAY,1
N4,SAT_NIGHT,1
N4,SUN_NIGHT,1
`,
	"preferences.csv": `nurse_id,shift_id,score
N1,MON_DAY,5
N2,FRI_DAY,3
N4,SAT_NIGHT,4
`,
}

// SampleDataCmd creates the sampleData command
func SampleDataCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sampleData",
		Short: "Write a small demo dataset to try the optimizer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create data directory: %w", err)
			}

			for name, content := range sampleFiles {
				path := filepath.Join(dir, name)
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("refusing to overwrite existing file %s", path)
				}
				if err := os.WriteFile(path, []byte(content), 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", name, err)
				}
			}

			fmt.Printf("\nSample dataset written to %s:\n\n", dir)
			fmt.Println("  nurses.csv        4 nurses (one ICU certified)")
			fmt.Println("  shifts.csv        7 shifts across the week")
			fmt.Println("  availability.csv  sparse availability grid")
			fmt.Println("  preferences.csv   a few preference scores")
			fmt.Printf("\nTry: nurseshiftly optimize --nurses %[1]s/nurses.csv --shifts %[1]s/shifts.csv --availability %[1]s/availability.csv\n\n", dir)

			return nil
		},
	}

	cmd.Flags().String("dir", "data", "Directory to write the sample CSVs into")

	return cmd
}
