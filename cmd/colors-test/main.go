package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"github.com/BeatGlow/colors"
)

func main() {
	mixFlag := flag.String("mix", "", "Mix each color with this color")
	strengthFlag := flag.Float64("strength", 0.5, "Mix strength in [0,1]")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <color>...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	var mix colors.Color
	if *mixFlag != "" {
		var err error
		if mix, err = colors.FromString(*mixFlag); err != nil {
			fatal(err)
		}
	}

	profile := termenv.ColorProfile()
	for _, arg := range flag.Args() {
		c, err := colors.FromString(arg)
		if err != nil {
			fatal(err)
		}
		if *mixFlag != "" {
			c = colors.Mix(c, mix, float32(*strengthFlag))
		}

		shade := "light"
		if colors.IsDark(c) {
			shade = "dark"
		}

		// Composite over white so translucent colors get a plain swatch.
		swatch := termenv.String("      ").Background(profile.Color(colors.Fill(c, colors.White).Hex()))
		fmt.Printf("%s %-24s %-10s %-5s luma %5.1f, contrast %5.2f on white, %5.2f on black\n",
			swatch, c, c.Hex(), shade,
			colors.Luma(c),
			colors.Contrast(c, colors.White),
			colors.Contrast(c, colors.Black))
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
