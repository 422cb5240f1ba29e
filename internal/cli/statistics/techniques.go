package statistics

import (
	"fmt"
	"strings"

	"github.com/moodlogapp/moodlog/internal/cli"
	"github.com/moodlogapp/moodlog/internal/models"
)

type TechniquesCmd struct {
	Distortion string `arg:"" help:"Distortion type to get techniques for (e.g. catastrophizing)."`
	Context    string `short:"c" help:"Optional free-text context to personalize the advice."`
}

func (c *TechniquesCmd) Run(ctx *cli.Context) error {
	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	bundle, err := ctx.Client.Techniques(reqCtx, c.Distortion, c.Context)
	if err != nil {
		return cli.WrapRequestError(err)
	}

	printBundle(bundle)
	return nil
}

func printBundle(b models.TechniqueBundle) {
	fmt.Println(b.DistortionName)
	if b.DistortionDescription != "" {
		fmt.Printf("%s\n", b.DistortionDescription)
	}
	if b.PersonalizedAdvice != "" {
		fmt.Printf("\n%s\n", b.PersonalizedAdvice)
	}

	for i, t := range b.Techniques {
		fmt.Printf("\n%d. %s", i+1, t.Title)
		var meta []string
		if t.Duration != "" {
			meta = append(meta, t.Duration)
		}
		if t.Difficulty != "" {
			meta = append(meta, t.Difficulty)
		}
		if len(meta) > 0 {
			fmt.Printf(" (%s)", strings.Join(meta, ", "))
		}
		fmt.Println()
		if t.Description != "" {
			fmt.Printf("   %s\n", t.Description)
		}
		if t.Exercise != "" {
			fmt.Printf("   Exercise: %s\n", t.Exercise)
		}
	}

	if len(b.NextSteps) > 0 {
		fmt.Println("\nNext steps:")
		for _, s := range b.NextSteps {
			fmt.Printf("  - %s\n", s)
		}
	}
}
