package drawer

import (
	"fmt"
	"html"
	"io"
	"os"
	"sort"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-chain/pkg/pipeline/measure"
)

// DOTDrawer renders the pipeline as a Graphviz DOT file.
type DOTDrawer struct {
	graph    graph.Graph[string, string]
	order    map[string]int
	steps    []string
	fileName string
}

// NewDOTDrawer creates a new DOT drawer writing to fileName.
func NewDOTDrawer(fileName string) *DOTDrawer {
	return &DOTDrawer{
		fileName: fileName,
		graph:    graph.New(graph.StringHash, graph.Directed()),
		order:    make(map[string]int),
	}
}

// AddStep adds a step to the pipeline graph. Adding a known step is a no-op.
func (d *DOTDrawer) AddStep(name string) error {
	if _, ok := d.order[name]; ok {
		return nil
	}

	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrap(err, "unable to add vertex")
	}

	d.order[name] = len(d.steps)
	d.steps = append(d.steps, name)

	return nil
}

// AddLink adds a link between two consecutive steps.
func (d *DOTDrawer) AddLink(parentName, childName string) error {
	_, err := d.graph.Edge(parentName, childName)
	if err == nil {
		return nil
	}

	err = d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// Draw creates the DOT file.
func (d *DOTDrawer) Draw() error {
	file, err := os.Create(d.fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.fileName)
	}
	defer file.Close()

	err = d.Render(file)
	if err != nil {
		return errors.Wrapf(err, "unable to write dot file %s", d.fileName)
	}

	return nil
}

// Render writes the DOT description of the graph to wrt.
func (d *DOTDrawer) Render(wrt io.Writer) error {
	desc, err := d.generateDOT()
	if err != nil {
		return errors.Wrap(err, "failed to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

// SetTotalTime sets the total time for the step.
func (d *DOTDrawer) SetTotalTime(stepName string, totalTime time.Duration) error {
	_, properties, err := d.graph.VertexWithProperties(stepName)
	if err != nil {
		return errors.Wrapf(err, "unable to get %s vertex properties", stepName)
	}

	properties.Attributes["xlabel"] = totalTime.String()

	return nil
}

const maxRGB = 240

// AddMeasure labels every step with its average duration and colours the link leading to it,
// from blue for the fastest step to red for the slowest.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	all := msr.AllMetrics()

	var minValue, maxValue time.Duration

	first := true

	for _, mt := range all {
		if mt.Count() == 0 {
			continue
		}

		avg := mt.AVGDuration()
		if first || avg < minValue {
			minValue = avg
		}

		if first || avg > maxValue {
			maxValue = avg
		}

		first = false
	}

	for name, mt := range all {
		if _, ok := d.order[name]; !ok || mt.Count() == 0 {
			continue
		}

		avg := mt.AVGDuration()

		fraction := 1.0
		if maxValue > minValue {
			fraction = float64(avg-minValue) / float64(maxValue-minValue)
		}

		colour, err := colors.RGB(uint8(maxRGB*fraction), 0, uint8(maxRGB-maxRGB*fraction)) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		err = d.updateStep(name, avg, colour.ToHEX().String())
		if err != nil {
			return err
		}
	}

	return nil
}

func (d *DOTDrawer) updateStep(name string, avg time.Duration, colour string) error {
	_, properties, err := d.graph.VertexWithProperties(name)
	if err != nil {
		return errors.Wrap(err, "unable to get vertex properties")
	}

	properties.Attributes["xlabel"] = avg.String()

	predecessors, err := d.graph.PredecessorMap()
	if err != nil {
		return errors.Wrap(err, "unable to get predecessors")
	}

	for parent := range predecessors[name] {
		err := d.graph.UpdateEdge(parent, name,
			graph.EdgeAttribute("label", avg.String()),
			graph.EdgeAttribute("fontcolor", "blue"),
			graph.EdgeAttribute("color", colour),
		)
		if err != nil {
			return errors.Wrap(err, "unable to update edge")
		}
	}

	return nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           string
	Target           string
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

// generateDOT lists vertices and edges in registration order so the output is stable.
func (d *DOTDrawer) generateDOT() (description, error) {
	desc := description{
		GraphType:    "digraph",
		Attributes:   map[string]string{"rankdir": "LR"},
		EdgeOperator: "->",
		Statements:   make([]statement, 0, 2*len(d.steps)),
	}

	adjacencyMap, err := d.graph.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for _, vertex := range d.steps {
		_, sourceProperties, err := d.graph.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))

		for k, v := range sourceProperties.Attributes {
			if k == "xlabel" {
				htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, html.EscapeString(vertex), html.EscapeString(v))

				continue
			}

			sourceAttributes[k] = v
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		})

		targets := make([]string, 0, len(adjacencyMap[vertex]))
		for target := range adjacencyMap[vertex] {
			targets = append(targets, target)
		}

		sort.Slice(targets, func(i, j int) bool {
			return d.order[targets[i]] < d.order[targets[j]]
		})

		for _, target := range targets {
			edge := adjacencyMap[vertex][target]
			desc.Statements = append(desc.Statements, statement{
				Source:         vertex,
				Target:         target,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			})
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
