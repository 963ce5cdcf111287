package graphics

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"orrery/internal/scene"
	"orrery/internal/ui"
	"orrery/internal/viewer"
)

// Sphere mesh resolution. One mesh of radius 1 is scaled per body.
const (
	sphereRings  = 32
	sphereSlices = 32
)

var ringColor = rl.NewColor(255, 255, 255, 128)

// renderer owns every GPU resource. It is created after the window exists and draws the scene
// once per loop frame.
type renderer struct {
	v       *viewer.Viewer
	sphere  rl.Mesh
	lit     rl.Material // lit, untextured
	litTex  rl.Material // lit, textured
	unlit   rl.Material // sun
	blank   rl.Texture2D
	light   lightUniforms
	skybox  *skybox
	overlay *overlay

	textures map[string]rl.Texture2D
	missing  map[string]bool
}

func newRenderer(v *viewer.Viewer) *renderer {
	r := &renderer{
		v:        v,
		textures: make(map[string]rl.Texture2D),
		missing:  make(map[string]bool),
	}
	r.sphere = rl.GenMeshSphere(1, sphereRings, sphereSlices)

	r.lit = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		r.lit.Shader = shader
	} else {
		v.Log.Warn("lit shader failed to compile; bodies drawn unlit")
	}
	r.litTex = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litTexturedFS); rl.IsShaderValid(shader) {
		r.litTex.Shader = shader
	}
	r.unlit = rl.LoadMaterialDefault()
	if albedo := r.unlit.GetMap(rl.MapAlbedo); albedo != nil {
		r.blank = albedo.Texture
	}
	r.light = newLightUniforms(v.Scene.Lights)

	for _, o := range v.Scene.Bodies() {
		r.texture(o.Texture)
	}
	r.skybox = loadSkybox(v)
	var font string
	r.overlay, font = newOverlay(v.Prefs.FontDirs)
	if font != "" {
		v.Log.Log("overlay font " + font)
	}
	return r
}

// texture returns the GPU texture for name, uploading it on first use. Missing textures are
// logged once and drawn with the body colour instead.
func (r *renderer) texture(name string) (rl.Texture2D, bool) {
	if name == "" || r.missing[name] {
		return rl.Texture2D{}, false
	}
	if tex, ok := r.textures[name]; ok {
		return tex, true
	}
	img, err := r.v.Textures.Image(name)
	if err != nil {
		r.missing[name] = true
		r.v.Log.Warn(fmt.Sprintf("texture %s: %v", name, err))
		return rl.Texture2D{}, false
	}
	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	if !rl.IsTextureValid(tex) {
		r.missing[name] = true
		return rl.Texture2D{}, false
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	r.textures[name] = tex
	return tex, true
}

func (r *renderer) unload() {
	for _, tex := range r.textures {
		rl.UnloadTexture(tex)
	}
	r.skybox.unload()
	r.overlay.unload()
}

func (r *renderer) camera() rl.Camera3D {
	c := r.v.Camera
	return rl.Camera3D{
		Position:   vec(c.Position),
		Target:     vec(c.Target),
		Up:         rl.NewVector3(c.Up[0], c.Up[1], c.Up[2]),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// draw is the loop's render step. It runs whether or not the animation is paused.
func (r *renderer) draw() {
	v := r.v
	cam := r.camera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.BeginMode3D(cam)
	r.skybox.draw(cam.Position)

	r.light.viewPos = [3]float32{cam.Position.X, cam.Position.Y, cam.Position.Z}
	r.light.lightPos = toArray(vec(v.Scene.Sun.Position))
	r.light.apply(r.lit.Shader)
	r.light.apply(r.litTex.Shader)

	r.drawBody(v.Scene.Sun, false)
	for _, o := range v.Scene.Planets {
		r.drawBody(o, true)
	}
	for _, o := range v.Scene.Moons {
		r.drawBody(o, true)
	}
	if v.State.OrbitsVisible {
		for _, ring := range v.Scene.Rings {
			drawRing(ring)
		}
	}
	rl.EndMode3D()

	v.Overlay(time.Now())
	w, h := v.Controller.Viewport()
	v.UI.Draw(r.overlay, int32(w), int32(h))
	rl.EndDrawing()
}

// drawBody draws o as a scaled sphere: spin about its own Y axis, then axial tilt about Z.
func (r *renderer) drawBody(o *scene.Object, lit bool) {
	s := o.Tag.Radius * worldScale
	p := vec(o.Position)
	transform := rl.MatrixMultiply(rl.MatrixScale(s, s, s), rl.MatrixRotateY(o.Spin))
	transform = rl.MatrixMultiply(transform, rl.MatrixRotateZ(o.Tilt))
	transform = rl.MatrixMultiply(transform, rl.MatrixTranslate(p.X, p.Y, p.Z))

	tex, textured := r.texture(o.Texture)
	mtl := r.lit
	switch {
	case !lit:
		mtl = r.unlit
	case textured:
		mtl = r.litTex
	}
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		if textured {
			albedo.Color = rl.White
			rl.SetMaterialTexture(&mtl, rl.MapAlbedo, tex)
		} else {
			albedo.Color = bodyColor(o)
			albedo.Texture = r.blank
		}
	}
	rl.DrawMesh(r.sphere, mtl, transform)
}

func bodyColor(o *scene.Object) rl.Color {
	if c, ok := ui.ParseHexColor(o.Color); ok {
		return c
	}
	return rl.Gray
}

// drawRing draws ring as a closed 3D line loop around its current centre.
func drawRing(ring *scene.Ring) {
	pts := ring.World()
	for i := range pts {
		rl.DrawLine3D(vec(pts[i]), vec(pts[(i+1)%len(pts)]), ringColor)
	}
}

func toArray(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
