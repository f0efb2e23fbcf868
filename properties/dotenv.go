package properties

import (
	"fmt"
	"github.com/joho/godotenv"
)

// DotEnv reads KEY=VALUE files; values from later files override earlier ones
func DotEnv(filenames ...string) (Map, error) {
	result := Map{}
	for _, filename := range filenames {
		values, err := godotenv.Read(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", filename, err)
		}
		for k, v := range values {
			result[k] = v
		}
	}
	return result, nil
}
