package shader

// SolidVertex passes position and per-vertex color through an orthographic
// projection. Vertex layout: vec3 position, vec4 color.
const SolidVertex = `
	#version 410 core

	layout (location = 0) in vec3 aPos;
	layout (location = 1) in vec4 aColor;

	uniform mat4 uProjection;

	out vec4 vColor;

	void main() {
		gl_Position = uProjection * vec4(aPos, 1.0);
		vColor = aColor;
	}
`

// SolidFragment outputs the interpolated vertex color.
const SolidFragment = `
	#version 410 core

	in vec4 vColor;
	out vec4 FragColor;

	void main() {
		FragColor = vColor;
	}
`
