package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/geometry"
	"github.com/df07/go-yart/pkg/lights"
	"github.com/df07/go-yart/pkg/material"
	"github.com/df07/go-yart/pkg/scene"
)

// LoadScene reads a YAML scene file. Mesh paths inside the file are resolved
// relative to the file's directory.
func LoadScene(path string) (*scene.Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScene builds a scene from a YAML document. Every failure is reported
// as a *ParseError.
func ParseScene(r io.Reader, baseDir string) (*scene.Scene, error) {
	var def sceneDef
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, newParseError("Scene", nil, err)
	}

	s, err := def.build(baseDir)
	if err != nil {
		return nil, newParseError("Scene", nil, err)
	}
	return s, nil
}

// sceneDef mirrors the top level of a scene file
type sceneDef struct {
	Config     *configDef     `yaml:"config"`
	Camera     *cameraDef     `yaml:"camera"`
	MissShader *missShaderDef `yaml:"missShader"`
	Lights     []lightDef     `yaml:"lights"`
	Materials  []materialDef  `yaml:"materials"`
	Geometry   *geometryDef   `yaml:"geometry"`
}

type sceneBuilder struct {
	scene     *scene.Scene
	materials map[string]geometry.MaterialIndex
	baseDir   string
}

func (def *sceneDef) build(baseDir string) (*scene.Scene, error) {
	config := scene.DefaultConfig()
	if def.Config != nil {
		var err error
		if config, err = def.Config.parse(config); err != nil {
			return nil, err
		}
	}

	if def.Camera == nil {
		return nil, missingField("Scene", nil, "camera")
	}
	camera, err := def.Camera.parse()
	if err != nil {
		return nil, err
	}

	b := &sceneBuilder{
		scene:     scene.NewScene(config, camera),
		materials: make(map[string]geometry.MaterialIndex),
		baseDir:   baseDir,
	}

	if def.MissShader != nil {
		if b.scene.MissShader, err = def.MissShader.parse(); err != nil {
			return nil, err
		}
	}

	for i := range def.Lights {
		light, err := def.Lights[i].parse()
		if err != nil {
			return nil, err
		}
		b.scene.AddLight(light)
	}

	// Later materials with a duplicate name shadow earlier ones
	for i := range def.Materials {
		name, m, err := def.Materials[i].parse()
		if err != nil {
			return nil, err
		}
		b.materials[name] = b.scene.AddMaterial(m)
	}

	if def.Geometry == nil {
		return nil, missingField("Scene", nil, "geometry")
	}
	if b.scene.Root, err = b.buildGeometry(def.Geometry); err != nil {
		return nil, err
	}

	return b.scene, nil
}

// materialIndex resolves a material name. Unknown names map to the reserved
// black material in slot 0.
func (b *sceneBuilder) materialIndex(name string) geometry.MaterialIndex {
	return b.materials[name]
}

// vectorDef accepts either a single number, broadcast to every component, or
// one number per component
type vectorDef struct {
	values []float64
	node   *yaml.Node
}

func (v *vectorDef) UnmarshalYAML(node *yaml.Node) error {
	v.node = node
	if node.Kind != yaml.SequenceNode {
		return newParseError("vector", node, errors.New("expected a sequence of numbers"))
	}
	if err := node.Decode(&v.values); err != nil {
		return newParseError("vector", node, err)
	}
	return nil
}

func (v vectorDef) components(typeName string, n int) ([]float64, error) {
	switch len(v.values) {
	case 1:
		broadcast := make([]float64, n)
		for i := range broadcast {
			broadcast[i] = v.values[0]
		}
		return broadcast, nil
	case n:
		return v.values, nil
	}
	return nil, newParseError(typeName, v.node, fmt.Errorf("expected 1 or %d components, got %d", n, len(v.values)))
}

func requireVec2(v vectorDef, typeName string, parent *yaml.Node, field string) (core.Vec2, error) {
	if v.node == nil {
		return core.Vec2{}, missingField(typeName, parent, field)
	}
	c, err := v.components("Vec2", 2)
	if err != nil {
		return core.Vec2{}, err
	}
	return core.NewVec2(c[0], c[1]), nil
}

func requireVec3(v vectorDef, typeName string, parent *yaml.Node, field string) (core.Vec3, error) {
	if v.node == nil {
		return core.Vec3{}, missingField(typeName, parent, field)
	}
	c, err := v.components("Vec3", 3)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(c[0], c[1], c[2]), nil
}

func requireColor3(v vectorDef, typeName string, parent *yaml.Node, field string) (core.Color3, error) {
	if v.node == nil {
		return core.Color3{}, missingField(typeName, parent, field)
	}
	c, err := v.components("Color3", 3)
	if err != nil {
		return core.Color3{}, err
	}
	return core.NewColor3(c[0], c[1], c[2]), nil
}

func requireFloat(value *float64, typeName string, parent *yaml.Node, field string) (float64, error) {
	if value == nil {
		return 0, missingField(typeName, parent, field)
	}
	return *value, nil
}

// exactlyOne reports whether exactly one of the variant keys was set
func exactlyOne(set ...bool) bool {
	count := 0
	for _, s := range set {
		if s {
			count++
		}
	}
	return count == 1
}

var errVariant = errors.New("expected exactly one known type key")

// Config

type configDef struct {
	Iterations *int      `yaml:"iterations"`
	ColorClamp vectorDef `yaml:"colorClamp"`
	Seed       *int64    `yaml:"seed"`

	node *yaml.Node
}

func (c *configDef) UnmarshalYAML(node *yaml.Node) error {
	type plain configDef
	c.node = node
	return node.Decode((*plain)(c))
}

func (c *configDef) parse(defaults scene.Config) (scene.Config, error) {
	config := defaults
	if c.Iterations != nil {
		if *c.Iterations < 1 {
			return config, newParseError("Config", c.node, fmt.Errorf("iterations must be positive, got %d", *c.Iterations))
		}
		config.Iterations = *c.Iterations
	}
	if c.ColorClamp.node != nil {
		clamp, err := requireVec2(c.ColorClamp, "Config", c.node, "colorClamp")
		if err != nil {
			return config, err
		}
		config.ColorClamp = clamp
	}
	if c.Seed != nil {
		config.Seed = *c.Seed
	}
	return config, nil
}

// Camera

type cameraDef struct {
	Perspective *perspectiveDef `yaml:"perspective"`

	node *yaml.Node
}

type perspectiveDef struct {
	Position      vectorDef `yaml:"position"`
	LookAt        vectorDef `yaml:"lookAt"`
	Up            vectorDef `yaml:"up"`
	Fov           *float64  `yaml:"fov"`
	ScreenSize    vectorDef `yaml:"screenSize"`
	SubpixelCount *int      `yaml:"subpixelCount"`
}

func (c *cameraDef) UnmarshalYAML(node *yaml.Node) error {
	type plain cameraDef
	c.node = node
	return node.Decode((*plain)(c))
}

func (c *cameraDef) parse() (*geometry.PerspectiveCamera, error) {
	if c.Perspective == nil {
		return nil, newParseError("Camera", c.node, errVariant)
	}
	p := c.Perspective
	const typeName = "PerspectiveCamera"

	position, err := requireVec3(p.Position, typeName, c.node, "position")
	if err != nil {
		return nil, err
	}
	lookAt, err := requireVec3(p.LookAt, typeName, c.node, "lookAt")
	if err != nil {
		return nil, err
	}
	up, err := requireVec3(p.Up, typeName, c.node, "up")
	if err != nil {
		return nil, err
	}
	fov, err := requireFloat(p.Fov, typeName, c.node, "fov")
	if err != nil {
		return nil, err
	}
	size, err := requireVec2(p.ScreenSize, typeName, c.node, "screenSize")
	if err != nil {
		return nil, err
	}
	if p.SubpixelCount == nil {
		return nil, missingField(typeName, c.node, "subpixelCount")
	}

	width, height := int(size.X), int(size.Y)
	if float64(width) != size.X || float64(height) != size.Y || width < 1 || height < 1 {
		return nil, newParseError(typeName, p.ScreenSize.node, fmt.Errorf("screen size must be positive integers, got %v", size))
	}

	return geometry.NewPerspectiveCamera(geometry.CameraConfig{
		Position:      position,
		LookAt:        lookAt,
		Up:            up,
		FieldOfView:   fov,
		Width:         width,
		Height:        height,
		SubpixelCount: *p.SubpixelCount,
	}), nil
}

// Miss shaders

type missShaderDef struct {
	Constant *struct {
		Color vectorDef `yaml:"color"`
	} `yaml:"constant"`
	Gradient *struct {
		Top    vectorDef `yaml:"top"`
		Bottom vectorDef `yaml:"bottom"`
	} `yaml:"gradient"`

	node *yaml.Node
}

func (m *missShaderDef) UnmarshalYAML(node *yaml.Node) error {
	type plain missShaderDef
	m.node = node
	return node.Decode((*plain)(m))
}

func (m *missShaderDef) parse() (scene.MissShader, error) {
	if !exactlyOne(m.Constant != nil, m.Gradient != nil) {
		return nil, newParseError("MissShader", m.node, errVariant)
	}

	if m.Constant != nil {
		color, err := requireColor3(m.Constant.Color, "ConstantMissShader", m.node, "color")
		if err != nil {
			return nil, err
		}
		return scene.NewConstantMissShader(color), nil
	}

	top, err := requireColor3(m.Gradient.Top, "GradientMissShader", m.node, "top")
	if err != nil {
		return nil, err
	}
	bottom, err := requireColor3(m.Gradient.Bottom, "GradientMissShader", m.node, "bottom")
	if err != nil {
		return nil, err
	}
	return scene.NewGradientMissShader(top, bottom), nil
}

// Lights

type lightDef struct {
	Point *struct {
		Color    vectorDef `yaml:"color"`
		Position vectorDef `yaml:"position"`
	} `yaml:"point"`
	Directional *struct {
		Color     vectorDef `yaml:"color"`
		Direction vectorDef `yaml:"direction"`
	} `yaml:"directional"`

	node *yaml.Node
}

func (l *lightDef) UnmarshalYAML(node *yaml.Node) error {
	type plain lightDef
	l.node = node
	return node.Decode((*plain)(l))
}

func (l *lightDef) parse() (lights.Light, error) {
	if !exactlyOne(l.Point != nil, l.Directional != nil) {
		return nil, newParseError("Light", l.node, errVariant)
	}

	if l.Point != nil {
		color, err := requireColor3(l.Point.Color, "PointLight", l.node, "color")
		if err != nil {
			return nil, err
		}
		position, err := requireVec3(l.Point.Position, "PointLight", l.node, "position")
		if err != nil {
			return nil, err
		}
		return lights.NewPointLight(position, color), nil
	}

	color, err := requireColor3(l.Directional.Color, "DirectionalLight", l.node, "color")
	if err != nil {
		return nil, err
	}
	direction, err := requireVec3(l.Directional.Direction, "DirectionalLight", l.node, "direction")
	if err != nil {
		return nil, err
	}
	return lights.NewDirectionalLight(direction, color), nil
}

// Materials

type materialDef struct {
	Emissive *struct {
		Name          string    `yaml:"name"`
		EmissiveColor vectorDef `yaml:"emissiveColor"`
	} `yaml:"emissive"`
	Lambertian *struct {
		Name         string    `yaml:"name"`
		DiffuseColor vectorDef `yaml:"diffuseColor"`
	} `yaml:"lambertian"`
	Phong *struct {
		Name          string    `yaml:"name"`
		AmbientColor  vectorDef `yaml:"ambientColor"`
		DiffuseColor  vectorDef `yaml:"diffuseColor"`
		SpecularColor vectorDef `yaml:"specularColor"`
		Shininess     *float64  `yaml:"shininess"`
	} `yaml:"phong"`
	Reflective *struct {
		Name string `yaml:"name"`
	} `yaml:"reflective"`
	Refractive *struct {
		Name            string   `yaml:"name"`
		RefractiveIndex *float64 `yaml:"refractiveIndex"`
	} `yaml:"refractive"`

	node *yaml.Node
}

func (m *materialDef) UnmarshalYAML(node *yaml.Node) error {
	type plain materialDef
	m.node = node
	return node.Decode((*plain)(m))
}

func (m *materialDef) parse() (string, material.Material, error) {
	if !exactlyOne(m.Emissive != nil, m.Lambertian != nil, m.Phong != nil, m.Reflective != nil, m.Refractive != nil) {
		return "", nil, newParseError("Material", m.node, errVariant)
	}

	var (
		typeName string
		name     string
		result   material.Material
		err      error
	)

	switch {
	case m.Emissive != nil:
		typeName, name = "EmissiveMaterial", m.Emissive.Name
		var color core.Color3
		color, err = requireColor3(m.Emissive.EmissiveColor, typeName, m.node, "emissiveColor")
		result = material.NewEmissive(color)
	case m.Lambertian != nil:
		typeName, name = "LambertianMaterial", m.Lambertian.Name
		var color core.Color3
		color, err = requireColor3(m.Lambertian.DiffuseColor, typeName, m.node, "diffuseColor")
		result = material.NewLambertian(color)
	case m.Phong != nil:
		typeName, name = "PhongMaterial", m.Phong.Name
		result, err = m.parsePhong(typeName)
	case m.Reflective != nil:
		typeName, name = "ReflectiveMaterial", m.Reflective.Name
		result = material.NewReflective()
	default:
		typeName, name = "RefractiveMaterial", m.Refractive.Name
		var index float64
		index, err = requireFloat(m.Refractive.RefractiveIndex, typeName, m.node, "refractiveIndex")
		result = material.NewRefractive(index)
	}

	if err != nil {
		return "", nil, err
	}
	if name == "" {
		return "", nil, missingField(typeName, m.node, "name")
	}
	return name, result, nil
}

func (m *materialDef) parsePhong(typeName string) (material.Material, error) {
	ambient, err := requireColor3(m.Phong.AmbientColor, typeName, m.node, "ambientColor")
	if err != nil {
		return nil, err
	}
	diffuse, err := requireColor3(m.Phong.DiffuseColor, typeName, m.node, "diffuseColor")
	if err != nil {
		return nil, err
	}
	specular, err := requireColor3(m.Phong.SpecularColor, typeName, m.node, "specularColor")
	if err != nil {
		return nil, err
	}
	shininess, err := requireFloat(m.Phong.Shininess, typeName, m.node, "shininess")
	if err != nil {
		return nil, err
	}
	return material.NewPhong(ambient, diffuse, specular, shininess), nil
}

// Geometry

type geometryDef struct {
	Sphere *struct {
		Material string    `yaml:"material"`
		Position vectorDef `yaml:"position"`
		Radius   *float64  `yaml:"radius"`
	} `yaml:"sphere"`
	Plane *struct {
		Material string    `yaml:"material"`
		Normal   vectorDef `yaml:"normal"`
		Distance *float64  `yaml:"distance"`
	} `yaml:"plane"`
	Triangle *struct {
		Material string    `yaml:"material"`
		Vertex0  vectorDef `yaml:"vertex0"`
		Vertex1  vectorDef `yaml:"vertex1"`
		Vertex2  vectorDef `yaml:"vertex2"`
		Normal0  vectorDef `yaml:"normal0"`
		Normal1  vectorDef `yaml:"normal1"`
		Normal2  vectorDef `yaml:"normal2"`
	} `yaml:"triangle"`
	Parallelogram *struct {
		Material  string    `yaml:"material"`
		Position  vectorDef `yaml:"position"`
		Edge1     vectorDef `yaml:"edge1"`
		Edge2     vectorDef `yaml:"edge2"`
		AreaLight bool      `yaml:"areaLight"`
	} `yaml:"parallelogram"`
	Collection *collectionDef `yaml:"collection"`
	Hierarchy  *collectionDef `yaml:"hierarchy"`
	Mesh       *struct {
		Material string `yaml:"material"`
		File     string `yaml:"file"`
	} `yaml:"mesh"`

	node *yaml.Node
}

type collectionDef struct {
	Children []geometryDef `yaml:"children"`
}

func (g *geometryDef) UnmarshalYAML(node *yaml.Node) error {
	type plain geometryDef
	g.node = node
	return node.Decode((*plain)(g))
}

func (b *sceneBuilder) buildGeometry(g *geometryDef) (geometry.Intersectable, error) {
	if !exactlyOne(g.Sphere != nil, g.Plane != nil, g.Triangle != nil, g.Parallelogram != nil,
		g.Collection != nil, g.Hierarchy != nil, g.Mesh != nil) {
		return nil, newParseError("Geometry", g.node, errVariant)
	}

	switch {
	case g.Sphere != nil:
		position, err := requireVec3(g.Sphere.Position, "Sphere", g.node, "position")
		if err != nil {
			return nil, err
		}
		radius, err := requireFloat(g.Sphere.Radius, "Sphere", g.node, "radius")
		if err != nil {
			return nil, err
		}
		return geometry.NewSphere(position, radius, b.materialIndex(g.Sphere.Material)), nil

	case g.Plane != nil:
		normal, err := requireVec3(g.Plane.Normal, "Plane", g.node, "normal")
		if err != nil {
			return nil, err
		}
		distance, err := requireFloat(g.Plane.Distance, "Plane", g.node, "distance")
		if err != nil {
			return nil, err
		}
		return geometry.NewPlane(normal, distance, b.materialIndex(g.Plane.Material)), nil

	case g.Triangle != nil:
		return b.buildTriangle(g)

	case g.Parallelogram != nil:
		p := g.Parallelogram
		position, err := requireVec3(p.Position, "Parallelogram", g.node, "position")
		if err != nil {
			return nil, err
		}
		edge1, err := requireVec3(p.Edge1, "Parallelogram", g.node, "edge1")
		if err != nil {
			return nil, err
		}
		edge2, err := requireVec3(p.Edge2, "Parallelogram", g.node, "edge2")
		if err != nil {
			return nil, err
		}
		parallelogram := geometry.NewParallelogram(position, edge1, edge2, b.materialIndex(p.Material))
		if p.AreaLight {
			b.scene.AddAreaLight(parallelogram)
		}
		return parallelogram, nil

	case g.Collection != nil:
		children, err := b.buildChildren(g.Collection)
		if err != nil {
			return nil, err
		}
		return geometry.NewIntersectableCollection(children...), nil

	case g.Hierarchy != nil:
		children, err := b.buildChildren(g.Hierarchy)
		if err != nil {
			return nil, err
		}
		return geometry.BuildBoundingBoxHierarchy(children, 0), nil

	default:
		return b.buildMesh(g)
	}
}

func (b *sceneBuilder) buildChildren(c *collectionDef) ([]geometry.Intersectable, error) {
	children := make([]geometry.Intersectable, 0, len(c.Children))
	for i := range c.Children {
		child, err := b.buildGeometry(&c.Children[i])
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// buildTriangle uses the per-vertex normals when all three are given and the
// face normal otherwise
func (b *sceneBuilder) buildTriangle(g *geometryDef) (geometry.Intersectable, error) {
	t := g.Triangle
	var vertices [3]core.Vec3
	for i, v := range []vectorDef{t.Vertex0, t.Vertex1, t.Vertex2} {
		var err error
		if vertices[i], err = requireVec3(v, "Triangle", g.node, fmt.Sprintf("vertex%d", i)); err != nil {
			return nil, err
		}
	}
	index := b.materialIndex(t.Material)

	if t.Normal0.node == nil || t.Normal1.node == nil || t.Normal2.node == nil {
		return geometry.NewFlatTriangle(vertices[0], vertices[1], vertices[2], index), nil
	}

	var normals [3]core.Vec3
	for i, v := range []vectorDef{t.Normal0, t.Normal1, t.Normal2} {
		var err error
		if normals[i], err = requireVec3(v, "Triangle", g.node, fmt.Sprintf("normal%d", i)); err != nil {
			return nil, err
		}
	}
	return geometry.NewTriangle(
		vertices[0], vertices[1], vertices[2],
		normals[0], normals[1], normals[2],
		index,
	), nil
}

func (b *sceneBuilder) buildMesh(g *geometryDef) (geometry.Intersectable, error) {
	if g.Mesh.File == "" {
		return nil, missingField("Mesh", g.node, "file")
	}

	path := g.Mesh.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(b.baseDir, path)
	}

	data, err := LoadPLY(path)
	if err != nil {
		return nil, newParseError("Mesh", g.node, err)
	}

	mesh, err := geometry.NewTriangleMesh(data.Vertices, data.Normals, data.Faces, b.materialIndex(g.Mesh.Material))
	if err != nil {
		return nil, newParseError("Mesh", g.node, err)
	}
	return mesh, nil
}
